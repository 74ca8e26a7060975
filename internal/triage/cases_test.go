package triage

import (
	"testing"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCases(t *testing.T) {
	c := newTestClassifier(t)
	cases := []Case{
		{
			Name:     "cold",
			Symptoms: []domain.SymptomID{domain.SymptomFever, domain.SymptomCough},
			Expect:   &Expectation{Severity: domain.SeverityMedium, Rule: RuleColdFlu},
		},
		{
			Name:     "wrong expectation",
			Symptoms: []domain.SymptomID{domain.SymptomHeadache},
			Expect:   &Expectation{Severity: domain.SeverityHigh},
		},
		{
			Name:     "wrong rule",
			Symptoms: []domain.SymptomID{domain.SymptomFever, domain.SymptomHeadache, domain.SymptomFatigue},
			Expect:   &Expectation{Severity: domain.SeverityMedium, Rule: RuleColdFlu},
		},
		{Name: "empty"},
		{
			Name:       "no expectation",
			Symptoms:   []domain.SymptomID{domain.SymptomOther},
			CustomText: "itching",
		},
	}

	results := c.RunCases(cases, domain.LangEnglish)
	require.Len(t, results, 5)

	assert.True(t, results[0].Passed())
	assert.False(t, results[1].Passed())
	assert.Equal(t, "severity: want high, got low", results[1].Mismatch)
	assert.Equal(t, "rule: want cold_flu, got multiple", results[2].Mismatch)
	assert.ErrorIs(t, results[3].Err, domain.ErrInsufficientInput)
	assert.True(t, results[4].Passed())
	assert.Equal(t, "itching", results[4].Verdict.CustomText)

	sum := Summarize(results)
	assert.Equal(t, 5, sum.Total)
	assert.Equal(t, 2, sum.Passed)
	assert.Equal(t, 2, sum.Failed)
	assert.Equal(t, 1, sum.Errored)
	assert.Equal(t, 2, sum.Severity[domain.SeverityLow])
	assert.Equal(t, 2, sum.Severity[domain.SeverityMedium])
	assert.Equal(t, domain.SeverityMedium, sum.Highest)
}

func TestSummarize_HighestByRank(t *testing.T) {
	results := []CaseResult{
		{Verdict: &domain.Verdict{Severity: domain.SeverityLow}},
		{Verdict: &domain.Verdict{Severity: domain.SeverityHigh}},
		{Verdict: &domain.Verdict{Severity: domain.SeverityMedium}},
	}
	assert.Equal(t, domain.SeverityHigh, Summarize(results).Highest)

	errOnly := []CaseResult{{Err: domain.ErrInsufficientInput}}
	assert.Empty(t, Summarize(errOnly).Highest)
}
