package formatter

import (
	"testing"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func englishLabels() VerdictLabels {
	return VerdictLabels{
		Result:           "Result",
		Advice:           "Advice:",
		EmergencyContact: "Emergency Contact",
		EmergencyCall:    "Emergency - 108",
		CallDoctorNow:    "Call Doctor Immediately",
		Disclaimer:       "This is guidance only.",
	}
}

func TestFormatVerdict_High_ShowsEmergency(t *testing.T) {
	out := stripANSI(FormatVerdict(VerdictData{
		Verdict: &domain.Verdict{
			Severity:  domain.SeverityHigh,
			Condition: "Urgent Medical Attention Required",
			Advice:    "Seek care now",
			Priority:  "High Priority",
		},
		SymptomNames: []string{"Chest Pain"},
		Labels:       englishLabels(),
	}))

	assert.Contains(t, out, "● High Priority")
	assert.Contains(t, out, "Urgent Medical Attention Required")
	assert.Contains(t, out, "Seek care now")
	assert.Contains(t, out, "Chest Pain")
	assert.Contains(t, out, "EMERGENCY CONTACT")
	assert.Contains(t, out, "Emergency - 108")
	assert.Contains(t, out, "Call Doctor Immediately")
	assert.Contains(t, out, "This is guidance only.")
}

func TestFormatVerdict_Medium_NoEmergency(t *testing.T) {
	out := stripANSI(FormatVerdict(VerdictData{
		Verdict: &domain.Verdict{
			Severity:   domain.SeverityMedium,
			Condition:  "Multiple Symptoms Present",
			Priority:   "Medium Priority",
			CustomText: "dizzy",
		},
		SymptomNames: []string{"Headache", "Nausea", "Others"},
		Labels:       englishLabels(),
	}))

	assert.NotContains(t, out, "EMERGENCY CONTACT")
	assert.NotContains(t, out, "Emergency - 108")
	assert.Contains(t, out, "Headache, Nausea, Others (dizzy)")
}
