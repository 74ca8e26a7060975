package triage

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/sehat/internal/domain"
)

// ClassifyEvent records one classification attempt.
type ClassifyEvent struct {
	SessionID string
	Symptoms  []domain.SymptomID
	Severity  domain.Severity
	Rule      string
	Language  domain.Language
	StartedAt time.Time
	Duration  time.Duration
	Err       error
}

// TransitionEvent records a session state change.
type TransitionEvent struct {
	SessionID string
	Action    string
	From      State
	To        State
}

// Observer receives classifier and session events for logging and metrics.
type Observer interface {
	OnClassify(event ClassifyEvent)
	OnTransition(event TransitionEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnClassify(ClassifyEvent)     {}
func (NoopObserver) OnTransition(TransitionEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes events to w as structured text lines.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnClassify(event ClassifyEvent) {
	ids := make([]string, len(event.Symptoms))
	for i, id := range event.Symptoms {
		ids[i] = string(id)
	}
	attrs := []any{
		"symptoms", ids,
		"count", len(ids),
		"language", string(event.Language),
		"duration_us", event.Duration.Microseconds(),
	}
	if event.SessionID != "" {
		attrs = append(attrs, "session_id", event.SessionID)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Error("triage_classify", attrs...)
		return
	}
	attrs = append(attrs, "severity", string(event.Severity), "rule", event.Rule)
	o.logger.Info("triage_classify", attrs...)
}

func (o *logObserver) OnTransition(event TransitionEvent) {
	o.logger.Info("triage_session",
		"session_id", event.SessionID,
		"action", event.Action,
		"from", string(event.From),
		"to", string(event.To),
	)
}

// MultiObserver fans events out to every non-nil observer.
type MultiObserver []Observer

func (m MultiObserver) OnClassify(event ClassifyEvent) {
	for _, o := range m {
		if o != nil {
			o.OnClassify(event)
		}
	}
}

func (m MultiObserver) OnTransition(event TransitionEvent) {
	for _, o := range m {
		if o != nil {
			o.OnTransition(event)
		}
	}
}
