package cli

import (
	"fmt"

	"github.com/alexanderramin/sehat/internal/cli/formatter"
	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/spf13/cobra"
)

func newTranslateCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "translate KEY",
		Short: "Resolve a message key in the current language",
		Long: `Resolve a message key. Entries missing in the requested language fall
back to English; --all shows every language and marks fallbacks.`,
		Example: `  sehat translate verdict.condition.urgent --lang pa
  sehat translate checker.disclaimer --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages := app.Classifier.Messages()
			key := domain.MessageKey(args[0])

			if !all {
				s, err := messages.Resolve(key, app.Language.Get())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			}

			rows := make([][]string, 0, len(domain.Languages))
			for _, l := range domain.Languages {
				s, err := messages.Resolve(key, l)
				if err != nil {
					return err
				}
				source := formatter.StyleGreen.Render("translated")
				if !messages.Translated(key, l) {
					source = formatter.StyleYellow.Render("fallback (" + string(messages.Fallback()) + ")")
				}
				rows = append(rows, []string{formatter.StyleBlue.Render(string(l)), s, source})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Header(string(key))+"\n")
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"LANG", "TEXT", "SOURCE"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show the key in every supported language")

	return cmd
}
