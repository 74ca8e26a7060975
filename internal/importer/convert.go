package importer

import (
	"fmt"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/alexanderramin/sehat/internal/symptom"
	"github.com/alexanderramin/sehat/internal/triage"
)

// Suite is a converted case file ready to run.
type Suite struct {
	Name     string
	Language domain.Language // empty when the file does not set one
	Cases    []triage.Case
}

// Convert resolves symptom names and expectations into triage cases.
// Call ValidateCaseFile first; Convert stops at the first problem.
func Convert(file *CaseFile, symptoms *symptom.Catalog) (*Suite, error) {
	suite := &Suite{
		Name:  file.Name,
		Cases: make([]triage.Case, 0, len(file.Cases)),
	}
	if file.Language != "" {
		lang, err := i18n.ParseLanguage(file.Language)
		if err != nil {
			return nil, fmt.Errorf("parsing language: %w", err)
		}
		suite.Language = lang
	}

	for i, c := range file.Cases {
		ids := make([]domain.SymptomID, 0, len(c.Symptoms))
		for _, s := range c.Symptoms {
			id, err := symptoms.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("case %d (%s): %w", i, c.Name, err)
			}
			ids = append(ids, id)
		}

		tc := triage.Case{
			Name:       c.Name,
			Symptoms:   ids,
			CustomText: c.Other,
		}
		if c.Expect != nil {
			tc.Expect = &triage.Expectation{
				Severity: domain.Severity(c.Expect.Severity),
				Rule:     c.Expect.Rule,
			}
		}
		suite.Cases = append(suite.Cases, tc)
	}
	return suite, nil
}

// Load reads, validates and converts a case file in one step. Validation
// problems are joined into a single error.
func Load(path string, symptoms *symptom.Catalog) (*Suite, error) {
	file, err := LoadCaseFile(path)
	if err != nil {
		return nil, err
	}
	if errs := ValidateCaseFile(file, symptoms); len(errs) > 0 {
		return nil, &ValidationError{Path: path, Errs: errs}
	}
	return Convert(file, symptoms)
}

// ValidationError lists every problem found in a case file.
type ValidationError struct {
	Path string
	Errs []error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %d validation error(s)", e.Path, len(e.Errs))
	for _, err := range e.Errs {
		msg += "\n  - " + err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() []error { return e.Errs }
