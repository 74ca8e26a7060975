package cli

import (
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive symptom checker",
		Long: `Open the full-screen checker. Move with up/down, toggle with space,
describe "others" with o, analyze with enter, switch language with l or tab.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecker(app)
		},
	}
}
