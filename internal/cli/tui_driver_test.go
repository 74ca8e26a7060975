package cli

import (
	"testing"

	"github.com/alexanderramin/sehat/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to the appModel internals
// (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App at 120x40.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// ToggleAt moves the cursor to row i of the symptom list and toggles it.
// The cursor is reset to the top first.
func (d *TestDriver) ToggleAt(i int) {
	d.T.Helper()
	for range d.appModel().state.App.Classifier.Symptoms().IDs() {
		d.PressUp()
	}
	d.PressDownN(i)
	d.PressSpace()
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting reports whether the app signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// ErrMsg returns the transient error line, if any.
func (d *TestDriver) ErrMsg() string {
	return d.appModel().errMsg
}
