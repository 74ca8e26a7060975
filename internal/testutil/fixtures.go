package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/alexanderramin/sehat/internal/symptom"
	"github.com/alexanderramin/sehat/internal/triage"
)

// NewTestClassifier wires the default symptom and message catalogs. It fails
// the test if the catalogs do not validate.
func NewTestClassifier(t *testing.T, opts ...triage.Option) *triage.Classifier {
	t.Helper()
	c, err := triage.NewClassifier(symptom.Default(), i18n.Default(), opts...)
	if err != nil {
		t.Fatalf("building classifier: %v", err)
	}
	return c
}

// Case options
type CaseOption func(*triage.Case)

func WithExpect(sev domain.Severity, rule string) CaseOption {
	return func(c *triage.Case) {
		c.Expect = &triage.Expectation{Severity: sev, Rule: rule}
	}
}

func WithOther(text string) CaseOption {
	return func(c *triage.Case) {
		c.CustomText = text
		for _, id := range c.Symptoms {
			if id == domain.SymptomOther {
				return
			}
		}
		c.Symptoms = append(c.Symptoms, domain.SymptomOther)
	}
}

// NewTestCase builds a case over ids.
func NewTestCase(name string, ids []domain.SymptomID, opts ...CaseOption) triage.Case {
	c := triage.Case{Name: name, Symptoms: ids}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WriteCaseFile writes content to name under a per-test temp dir and returns
// the path.
func WriteCaseFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing case file: %v", err)
	}
	return path
}

// LadderYAML is a case file covering every rung of the default ladder.
const LadderYAML = `name: ladder
cases:
  - name: heart
    symptoms: [chestpain]
    expect: {severity: high, rule: urgent}
  - name: breathing
    symptoms: ["shortness of breath", fever]
    expect: {severity: high, rule: urgent}
  - name: cold
    symptoms: [fever, cough]
    expect: {severity: medium, rule: cold_flu}
  - name: several
    symptoms: [fever, headache, fatigue]
    expect: {severity: medium, rule: multiple}
  - name: custom counts
    symptoms: [headache, nausea, others]
    other: dizziness
    expect: {severity: medium, rule: multiple}
  - name: headache
    symptoms: [headache]
    expect: {severity: low, rule: mild}
`
