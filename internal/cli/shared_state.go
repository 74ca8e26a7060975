package cli

import (
	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/triage"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App     *App
	Session *triage.Session

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	return &SharedState{
		App:     app,
		Session: triage.NewSession(app.Classifier),
	}
}

// Lang returns the current language. Views call it on every render.
func (s *SharedState) Lang() domain.Language {
	return s.App.Language.Get()
}

// SetLanguage changes the current language and re-renders any verdict.
func (s *SharedState) SetLanguage(l domain.Language) error {
	if err := s.App.Language.Set(l); err != nil {
		return err
	}
	return s.Session.Relocalize(l)
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
