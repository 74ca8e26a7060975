package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/sehat/internal/cli/formatter"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/spf13/cobra"
)

func newSymptomsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "symptoms",
		Aliases: []string{"list"},
		Short:   "List selectable symptoms in the current language",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := app.Classifier.ListSymptoms(app.Language.Get())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, listings)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSymptomList(app.t(i18n.KeySelectSymptoms), listings))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
