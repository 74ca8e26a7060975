package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewChecker ViewID = iota
	ViewVerdict
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// backHandler is implemented by views that need to run their own logic on
// esc instead of a plain pop.
type backHandler interface {
	Back() tea.Cmd
}

// viewCapturesInput reports whether v takes every key itself, bypassing the
// global bindings.
func viewCapturesInput(v View) bool {
	return v.ID() == ViewForm
}
