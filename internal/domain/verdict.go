package domain

// Severity is the coarse urgency tier of a verdict.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ValidSeverities is the canonical set of accepted severity strings.
var ValidSeverities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// Rank orders severities so callers can compare urgency. Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Verdict is the read-only outcome of one classification.
type Verdict struct {
	Severity     Severity    `json:"severity"`
	Rule         string      `json:"rule"`
	ConditionKey MessageKey  `json:"condition_key"`
	AdviceKey    MessageKey  `json:"advice_key"`
	PriorityKey  MessageKey  `json:"priority_key"`
	Condition    string      `json:"condition"`
	Advice       string      `json:"advice"`
	Priority     string      `json:"priority"`
	Language     Language    `json:"language"`
	Symptoms     []SymptomID `json:"symptoms"`
	CustomText   string      `json:"custom_text,omitempty"`
}

// NeedsEmergencyContact gates the emergency contact block.
func (v *Verdict) NeedsEmergencyContact() bool {
	return v.Severity == SeverityHigh
}
