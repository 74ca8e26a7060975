package cli

import (
	"fmt"

	"github.com/alexanderramin/sehat/internal/cli/formatter"
	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/spf13/cobra"
)

func newLanguagesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLanguages(app.t(i18n.KeyLanguagePicker), languageRows(app)))
			return nil
		},
	}
}

func languageRows(app *App) []formatter.LanguageRow {
	current := app.Language.Get()
	rows := make([]formatter.LanguageRow, 0, len(domain.Languages))
	for _, l := range domain.Languages {
		rows = append(rows, formatter.LanguageRow{
			Code:    string(l),
			Name:    app.t(i18n.LanguageNameKey(l)),
			Current: l == current,
		})
	}
	return rows
}
