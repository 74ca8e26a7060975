package triage

import (
	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
)

// Facts is the classifier's view of a selection: membership and category
// counts, computed once per classification.
type Facts struct {
	Count      int
	present    map[domain.SymptomID]bool
	categories map[domain.Category]int
}

// Has reports whether id is among the selected symptoms.
func (f Facts) Has(id domain.SymptomID) bool { return f.present[id] }

// HasCategory reports whether any selected symptom belongs to c.
func (f Facts) HasCategory(c domain.Category) bool { return f.categories[c] > 0 }

// Rule is one rung of the triage ladder. Rules are checked in order and the
// first match decides the verdict.
type Rule struct {
	Name         string
	Severity     domain.Severity
	ConditionKey domain.MessageKey
	AdviceKey    domain.MessageKey
	Match        func(Facts) bool
}

// Rule names, reported on verdicts and in case files.
const (
	RuleUrgent   = "urgent"
	RuleColdFlu  = "cold_flu"
	RuleMultiple = "multiple"
	RuleMild     = "mild"
)

// MultipleSymptomThreshold is the selection size at which the count rule fires.
const MultipleSymptomThreshold = 3

// DefaultRules is the built-in ladder, highest urgency first. The custom
// symptom counts toward MultipleSymptomThreshold but has no category signal.
var DefaultRules = []Rule{
	{
		Name:         RuleUrgent,
		Severity:     domain.SeverityHigh,
		ConditionKey: i18n.KeyConditionUrgent,
		AdviceKey:    i18n.KeyAdviceUrgent,
		Match: func(f Facts) bool {
			return f.HasCategory(domain.CategoryCardiovascular) || f.Has(domain.SymptomBreathless)
		},
	},
	{
		Name:         RuleColdFlu,
		Severity:     domain.SeverityMedium,
		ConditionKey: i18n.KeyConditionColdFlu,
		AdviceKey:    i18n.KeyAdviceColdFlu,
		Match: func(f Facts) bool {
			return f.Has(domain.SymptomFever) && f.HasCategory(domain.CategoryRespiratory)
		},
	},
	{
		Name:         RuleMultiple,
		Severity:     domain.SeverityMedium,
		ConditionKey: i18n.KeyConditionMultiple,
		AdviceKey:    i18n.KeyAdviceMultiple,
		Match: func(f Facts) bool {
			return f.Count >= MultipleSymptomThreshold
		},
	},
	{
		Name:         RuleMild,
		Severity:     domain.SeverityLow,
		ConditionKey: i18n.KeyConditionMild,
		AdviceKey:    i18n.KeyAdviceMild,
		Match:        func(Facts) bool { return true },
	},
}

// PriorityKey returns the message key for the priority badge of s.
func PriorityKey(s domain.Severity) domain.MessageKey {
	switch s {
	case domain.SeverityHigh:
		return i18n.KeyPriorityHigh
	case domain.SeverityMedium:
		return i18n.KeyPriorityMedium
	default:
		return i18n.KeyPriorityLow
	}
}
