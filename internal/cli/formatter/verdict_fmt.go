package formatter

import (
	"strings"

	"github.com/alexanderramin/sehat/internal/domain"
)

// VerdictLabels holds the localized text around a verdict. EmergencyCall is
// already formatted with the emergency number.
type VerdictLabels struct {
	Result           string
	Advice           string
	EmergencyContact string
	EmergencyCall    string
	CallDoctorNow    string
	Disclaimer       string
}

// VerdictData is everything needed to render a verdict screen.
type VerdictData struct {
	Verdict      *domain.Verdict
	SymptomNames []string // localized, selection order
	Labels       VerdictLabels
}

// FormatVerdict renders the result box, the emergency block for high
// severity, and the disclaimer.
func FormatVerdict(d VerdictData) string {
	v := d.Verdict
	var body strings.Builder

	body.WriteString(SeverityIndicator(v.Severity, v.Priority))
	body.WriteString("\n\n")
	body.WriteString(SeverityColor(v.Severity).Bold(true).Render(v.Condition))
	body.WriteString("\n\n")
	body.WriteString(Dim(d.Labels.Advice))
	body.WriteString("\n")
	body.WriteString(StyleFg.Render(v.Advice))

	if names := symptomLine(d.SymptomNames, v.CustomText); names != "" {
		body.WriteString("\n\n")
		body.WriteString(Dim(names))
	}

	var b strings.Builder
	b.WriteString(RenderBox(d.Labels.Result, body.String()))
	b.WriteString("\n")

	if v.NeedsEmergencyContact() {
		alert := StyleRed.Bold(true).Render(d.Labels.EmergencyCall) + "\n" +
			StyleRed.Render(d.Labels.CallDoctorNow)
		b.WriteString(RenderAlertBox(d.Labels.EmergencyContact, alert))
		b.WriteString("\n")
	}

	if d.Labels.Disclaimer != "" {
		b.WriteString(Dim(d.Labels.Disclaimer))
		b.WriteString("\n")
	}
	return b.String()
}

func symptomLine(names []string, customText string) string {
	if len(names) == 0 {
		return ""
	}
	line := strings.Join(names, ", ")
	if customText != "" {
		line += " (" + customText + ")"
	}
	return line
}
