package triage

import (
	"fmt"

	"github.com/alexanderramin/sehat/internal/domain"
)

// Case is a named selection with an optional expected outcome, used to audit
// the rule ladder in bulk.
type Case struct {
	Name       string
	Symptoms   []domain.SymptomID
	CustomText string
	Expect     *Expectation
}

// Expectation is the outcome a Case asserts. An empty Rule matches any rule.
type Expectation struct {
	Severity domain.Severity
	Rule     string
}

// CaseResult is the outcome of running one Case.
type CaseResult struct {
	Case     Case
	Verdict  *domain.Verdict
	Err      error
	Mismatch string
}

// Passed reports whether the case classified without error and met its
// expectation, if any.
func (r CaseResult) Passed() bool {
	return r.Err == nil && r.Mismatch == ""
}

// RunCases classifies every case in lang and compares against expectations.
// Failures are reported per case; one bad case does not stop the run.
func (c *Classifier) RunCases(cases []Case, lang domain.Language) []CaseResult {
	results := make([]CaseResult, 0, len(cases))
	for _, tc := range cases {
		res := CaseResult{Case: tc}
		res.Verdict, res.Err = c.ClassifyIDs(tc.Symptoms, tc.CustomText, lang)
		if res.Err == nil && tc.Expect != nil {
			res.Mismatch = compare(tc.Expect, res.Verdict)
		}
		results = append(results, res)
	}
	return results
}

func compare(want *Expectation, got *domain.Verdict) string {
	if want.Severity != "" && want.Severity != got.Severity {
		return fmt.Sprintf("severity: want %s, got %s", want.Severity, got.Severity)
	}
	if want.Rule != "" && want.Rule != got.Rule {
		return fmt.Sprintf("rule: want %s, got %s", want.Rule, got.Rule)
	}
	return ""
}

// Summary counts case outcomes.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Errored  int
	Severity map[domain.Severity]int
	// Highest is the most urgent severity any case produced, or empty.
	Highest domain.Severity
}

// Summarize tallies results.
func Summarize(results []CaseResult) Summary {
	s := Summary{Total: len(results), Severity: make(map[domain.Severity]int)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Errored++
		case r.Mismatch != "":
			s.Failed++
		default:
			s.Passed++
		}
		if r.Verdict != nil {
			s.Severity[r.Verdict.Severity]++
			if r.Verdict.Severity.Rank() > s.Highest.Rank() {
				s.Highest = r.Verdict.Severity
			}
		}
	}
	return s
}
