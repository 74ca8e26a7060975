package cli

import (
	"github.com/alexanderramin/sehat/internal/cli/formatter"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// verdictView shows the session's verdict in a scrollable viewport. Leaving
// it starts a new check.
type verdictView struct {
	state    *SharedState
	vp       viewport.Model
	newCheck key.Binding
}

func newVerdictView(state *SharedState) *verdictView {
	height := state.ContentHeight()
	if state.Height == 0 {
		height = 40 // no WindowSizeMsg yet
	}
	vp := viewport.New(max(state.Width, 40), height)
	vp.KeyMap = verdictViewportKeyMap()
	v := &verdictView{
		state:    state,
		vp:       vp,
		newCheck: key.NewBinding(key.WithKeys("n", "r", "enter"), key.WithHelp("n", "new check")),
	}
	v.render()
	return v
}

func (v *verdictView) ID() ViewID    { return ViewVerdict }
func (v *verdictView) Title() string { return v.state.App.t(i18n.KeyResult) }

func (v *verdictView) ShortHelp() []key.Binding {
	return []key.Binding{
		v.newCheck,
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}

func (v *verdictView) Init() tea.Cmd { return nil }

// Back resets the session so the checker below is usable again.
func (v *verdictView) Back() tea.Cmd {
	v.state.Session.Reset()
	return popView()
}

func (v *verdictView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.render()
		return v, nil
	case refreshViewMsg:
		v.render()
		return v, nil
	case tea.KeyMsg:
		if key.Matches(msg, v.newCheck) {
			return v, v.Back()
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *verdictView) render() {
	verdict := v.state.Session.Verdict()
	if verdict == nil {
		v.vp.SetContent("")
		return
	}
	app := v.state.App
	content := "\n" + formatter.FormatVerdict(verdictData(app, verdict)) + "\n" +
		formatter.Dim(app.t(i18n.KeyConsultDoctor)+" · "+app.t(i18n.KeyNewCheck)+": n")
	v.vp.SetContent(content)
}

func (v *verdictView) View() string {
	return v.vp.View()
}

// verdictViewportKeyMap leaves letter keys free for the view and globals.
func verdictViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
