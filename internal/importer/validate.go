package importer

import (
	"fmt"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/alexanderramin/sehat/internal/symptom"
	"github.com/alexanderramin/sehat/internal/triage"
)

var validRules = map[string]bool{
	triage.RuleUrgent:   true,
	triage.RuleColdFlu:  true,
	triage.RuleMultiple: true,
	triage.RuleMild:     true,
}

// ValidateCaseFile checks a case file against the symptom catalog before
// conversion. Returns a slice of all validation errors found.
func ValidateCaseFile(file *CaseFile, symptoms *symptom.Catalog) []error {
	var errs []error

	if file.Name == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	if file.Language != "" {
		if _, err := i18n.ParseLanguage(file.Language); err != nil {
			errs = append(errs, fmt.Errorf("language: %w", err))
		}
	}
	if len(file.Cases) == 0 {
		errs = append(errs, fmt.Errorf("cases: at least one case is required"))
	}

	names := make(map[string]bool, len(file.Cases))
	for i, c := range file.Cases {
		errs = append(errs, validateCase(i, c, names, symptoms)...)
	}
	return errs
}

func validateCase(i int, c CaseImport, names map[string]bool, symptoms *symptom.Catalog) []error {
	var errs []error
	prefix := fmt.Sprintf("cases[%d]", i)

	if c.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	} else {
		if names[c.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate %q", prefix, c.Name))
		}
		names[c.Name] = true
	}

	if len(c.Symptoms) == 0 {
		errs = append(errs, fmt.Errorf("%s.symptoms: at least one symptom is required", prefix))
	}
	hasCustom := false
	for j, s := range c.Symptoms {
		id, err := symptoms.Parse(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.symptoms[%d]: %w", prefix, j, err))
			continue
		}
		if symptoms.IsCustom(id) {
			hasCustom = true
		}
	}
	if c.Other != "" && !hasCustom {
		errs = append(errs, fmt.Errorf("%s.other: set but %q is not selected", prefix, domain.SymptomOther))
	}

	if c.Expect != nil {
		if !domain.ValidSeverities[c.Expect.Severity] {
			errs = append(errs, fmt.Errorf("%s.expect.severity: invalid value %q", prefix, c.Expect.Severity))
		}
		if c.Expect.Rule != "" && !validRules[c.Expect.Rule] {
			errs = append(errs, fmt.Errorf("%s.expect.rule: invalid value %q", prefix, c.Expect.Rule))
		}
	}
	return errs
}
