package triage

import (
	"sync"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/google/uuid"
)

// State is the phase of a Session.
type State string

const (
	StateSelecting      State = "selecting"
	StateShowingVerdict State = "showing_verdict"
)

// InputError is a recoverable validation failure with a message localized
// for the user. It unwraps to the underlying sentinel.
type InputError struct {
	Message string
	Err     error
}

func (e *InputError) Error() string { return e.Message }
func (e *InputError) Unwrap() error { return e.Err }

// Session holds an in-progress symptom selection and the verdict it produced.
// Methods serialize on an internal mutex, so one session may be shared by
// several callers.
type Session struct {
	mu         sync.Mutex
	id         string
	classifier *Classifier
	state      State
	selection  Selection
	verdict    *domain.Verdict
}

// NewSession starts a session in StateSelecting with an empty selection.
func NewSession(c *Classifier) *Session {
	return &Session{
		id:         uuid.New().String(),
		classifier: c,
		state:      StateSelecting,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Selected returns the selected ids in selection order.
func (s *Session) Selected() []domain.SymptomID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IDs()
}

// IsSelected reports whether id is in the current selection.
func (s *Session) IsSelected(id domain.SymptomID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Has(id)
}

// Count returns the number of selected symptoms.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Len()
}

// CustomText returns the free text entered for the custom symptom.
func (s *Session) CustomText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.CustomText
}

// CustomVisible reports whether the free-text field is shown, which is
// exactly when the custom symptom is selected.
func (s *Session) CustomVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customSelected()
}

// Verdict returns a copy of the current verdict, or nil.
func (s *Session) Verdict() *domain.Verdict {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.verdict == nil {
		return nil
	}
	return cloneVerdict(s.verdict)
}

// Toggle adds or removes id. Deselecting the custom symptom also clears its
// free text. Only allowed while selecting.
func (s *Session) Toggle(id domain.SymptomID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelecting {
		return domain.ErrInvalidTransition
	}
	if _, err := s.classifier.symptoms.CategoryOf(id); err != nil {
		return err
	}

	selected := s.selection.Toggle(id)
	if !selected && s.classifier.symptoms.IsCustom(id) {
		s.selection.CustomText = ""
	}
	s.emit("toggle", s.state, s.state)
	return nil
}

// SetCustomText records free text for the custom symptom. The field must be
// visible.
func (s *Session) SetCustomText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelecting || !s.customSelected() {
		return domain.ErrInvalidTransition
	}
	s.selection.CustomText = text
	return nil
}

// Submit classifies the selection and moves to StateShowingVerdict. With an
// empty selection it returns an *InputError wrapping
// domain.ErrInsufficientInput and stays in StateSelecting.
func (s *Session) Submit(lang domain.Language) (*domain.Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelecting {
		return nil, domain.ErrInvalidTransition
	}
	if s.selection.Len() == 0 {
		msg, err := s.classifier.messages.Resolve(i18n.KeySelectPrompt, lang)
		if err != nil {
			msg = domain.ErrInsufficientInput.Error()
		}
		return nil, &InputError{Message: msg, Err: domain.ErrInsufficientInput}
	}

	v, err := s.classifier.classify(s.id, s.selection, lang)
	if err != nil {
		return nil, err
	}
	s.verdict = v
	s.state = StateShowingVerdict
	s.emit("submit", StateSelecting, StateShowingVerdict)

	return cloneVerdict(v), nil
}

// Relocalize re-renders the current verdict, if any, in lang.
func (s *Session) Relocalize(lang domain.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.verdict == nil || s.verdict.Language == lang {
		return nil
	}
	v, err := s.classifier.Localize(s.verdict, lang)
	if err != nil {
		return err
	}
	s.verdict = v
	return nil
}

// Reset clears the selection, free text and verdict and returns to
// StateSelecting. Allowed in any state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.state
	s.selection.Clear()
	s.verdict = nil
	s.state = StateSelecting
	s.emit("reset", from, StateSelecting)
}

func (s *Session) customSelected() bool {
	return s.classifier.hasCustom(s.selection)
}

func (s *Session) emit(action string, from, to State) {
	s.classifier.observer.OnTransition(TransitionEvent{
		SessionID: s.id,
		Action:    action,
		From:      from,
		To:        to,
	})
}
