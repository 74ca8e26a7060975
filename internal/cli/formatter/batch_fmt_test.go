package formatter

import (
	"errors"
	"testing"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/symptom"
	"github.com/alexanderramin/sehat/internal/triage"
	"github.com/stretchr/testify/assert"
)

func TestFormatCaseResults(t *testing.T) {
	results := []triage.CaseResult{
		{
			Case:    triage.Case{Name: "cold", Symptoms: []domain.SymptomID{domain.SymptomFever, domain.SymptomCough}},
			Verdict: &domain.Verdict{Severity: domain.SeverityMedium, Rule: triage.RuleColdFlu},
		},
		{
			Case:     triage.Case{Name: "wrong", Symptoms: []domain.SymptomID{domain.SymptomHeadache}},
			Verdict:  &domain.Verdict{Severity: domain.SeverityLow, Rule: triage.RuleMild},
			Mismatch: "severity: want high, got low",
		},
		{Case: triage.Case{Name: "empty"}, Err: errors.New("at least one symptom must be selected")},
	}

	out := stripANSI(FormatCaseResults("ladder", domain.LangEnglish, results))
	assert.Contains(t, out, "LADDER (EN)")
	assert.Contains(t, out, "fever,cough")
	assert.Contains(t, out, "✔ pass")
	assert.Contains(t, out, "✖ severity: want high, got low")
	assert.Contains(t, out, "! at least one symptom must be selected")
	assert.Contains(t, out, "3 cases: 1 passed, 1 failed, 1 errored")
	assert.Contains(t, out, "] 1/3")
	assert.Contains(t, out, "highest: ● MEDIUM")
}

func TestFormatSummary_AllPassed(t *testing.T) {
	out := stripANSI(FormatSummary(triage.Summary{Total: 2, Passed: 2}))
	assert.Equal(t, "2 cases: 2 passed", out)
}

func TestFormatSymptomList(t *testing.T) {
	out := stripANSI(FormatSymptomList("Select Your Symptoms", []symptom.Listing{
		{ID: domain.SymptomFever, Category: domain.CategoryGeneral, DisplayName: "Fever"},
		{ID: domain.SymptomChestPain, Category: domain.CategoryCardiovascular, DisplayName: "Chest Pain"},
	}))
	assert.Contains(t, out, "SELECT YOUR SYMPTOMS")
	assert.Contains(t, out, "chestpain")
	assert.Contains(t, out, "Chest Pain")
	assert.Contains(t, out, "Cardiovascular")
}

func TestFormatLanguages_MarksCurrent(t *testing.T) {
	out := stripANSI(FormatLanguages("Choose Language", []LanguageRow{
		{Code: "en", Name: "English"},
		{Code: "hi", Name: "Hindi", Current: true},
	}))
	assert.Contains(t, out, "▸ hi")
	assert.Contains(t, out, "  en")
}
