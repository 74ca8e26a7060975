package cli

import (
	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/alexanderramin/sehat/internal/triage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands and the TUI need.
type App struct {
	Classifier *triage.Classifier
	Language   *i18n.Preference

	// EmergencyNumber is shown in the emergency block of high-severity verdicts.
	EmergencyNumber string

	// Gatherer, when set, is dumped in text exposition format after batch runs
	// that request it. DumpMetrics is the default for batch --metrics.
	Gatherer    prometheus.Gatherer
	DumpMetrics bool

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command opens the checker only when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "sehat" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	lang := &languageFlag{}

	root := &cobra.Command{
		Use:   "sehat",
		Short: "Offline multilingual symptom checker",
		Long: `Select symptoms and get a rule-based severity verdict with advice,
in English, Hindi or Punjabi. This is guidance only, not a diagnosis.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if lang.set {
				return app.Language.Set(lang.value)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runChecker(app)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().Var(lang, "lang", "Language: en, hi, pa, or a name such as hindi")

	root.AddCommand(
		newSymptomsCmd(app),
		newCheckCmd(app),
		newTranslateCmd(app),
		newLanguagesCmd(app),
		newBatchCmd(app),
		newShellCmd(app),
	)

	return root
}

// t resolves key in the current language. A missing key renders as the key
// itself so a catalog gap never hides output.
func (a *App) t(key domain.MessageKey) string {
	s, err := a.Classifier.Messages().Resolve(key, a.Language.Get())
	if err != nil {
		return string(key)
	}
	return s
}

func (a *App) tf(key domain.MessageKey, args ...any) string {
	s, err := a.Classifier.Messages().Resolvef(key, a.Language.Get(), args...)
	if err != nil {
		return string(key)
	}
	return s
}
