package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/sehat/internal/cli/formatter"
	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/alexanderramin/sehat/internal/triage"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	var other string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check SYMPTOM...",
		Short: "Classify a set of symptoms",
		Long: `Classify symptoms given as ids, English names or aliases, separated by
spaces or commas. --other describes a symptom not in the list and selects
"others".`,
		Example: `  sehat check fever cough
  sehat check "chest pain" --lang hi
  sehat check headache,nausea --other "blurred vision" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := buildSession(app, splitSymptomArgs(args), other)
			if err != nil {
				return err
			}
			v, err := sess.Submit(app.Language.Get())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, v)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatVerdict(verdictData(app, v)))
			return nil
		},
	}

	cmd.Flags().StringVar(&other, "other", "", `Free-text description; implies "others"`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

// splitSymptomArgs accepts both "fever cough" and "fever,cough".
func splitSymptomArgs(args []string) []string {
	var out []string
	for _, a := range args {
		for _, part := range strings.Split(a, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// buildSession drives a fresh session through the same toggles the
// interactive checker would make.
func buildSession(app *App, names []string, other string) (*triage.Session, error) {
	catalog := app.Classifier.Symptoms()
	sess := triage.NewSession(app.Classifier)

	for _, name := range names {
		id, err := catalog.Parse(name)
		if err != nil {
			return nil, err
		}
		if !sess.IsSelected(id) {
			if err := sess.Toggle(id); err != nil {
				return nil, err
			}
		}
	}

	if other != "" {
		custom, ok := catalog.Custom()
		if !ok {
			return nil, errors.New("--other: symptom catalog has no free-text entry")
		}
		if !sess.IsSelected(custom) {
			if err := sess.Toggle(custom); err != nil {
				return nil, err
			}
		}
		if err := sess.SetCustomText(other); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// verdictData gathers the localized text around v for the formatter.
func verdictData(app *App, v *domain.Verdict) formatter.VerdictData {
	names := make([]string, 0, len(v.Symptoms))
	for _, id := range v.Symptoms {
		names = append(names, symptomName(app, id))
	}
	return formatter.VerdictData{
		Verdict:      v,
		SymptomNames: names,
		Labels: formatter.VerdictLabels{
			Result:           app.t(i18n.KeyResult),
			Advice:           app.t(i18n.KeyAdvice),
			EmergencyContact: app.t(i18n.KeyEmergencyContact),
			EmergencyCall:    app.tf(i18n.KeyEmergencyCall, app.EmergencyNumber),
			CallDoctorNow:    app.t(i18n.KeyCallDoctorNow),
			Disclaimer:       app.t(i18n.KeyDisclaimer),
		},
	}
}

func symptomName(app *App, id domain.SymptomID) string {
	d, err := app.Classifier.Symptoms().Get(id)
	if err != nil {
		return string(id)
	}
	return app.t(d.MessageKey)
}
