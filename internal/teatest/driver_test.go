package teatest

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type echoMsg string

// echoModel records keys and echoes "!" presses back as a follow-up message.
type echoModel struct {
	keys   []string
	echoes []string
	width  int
}

func (m echoModel) Init() tea.Cmd {
	return func() tea.Msg { return echoMsg("init") }
}

func (m echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case echoMsg:
		m.echoes = append(m.echoes, string(msg))
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		switch msg.String() {
		case "!":
			return m, tea.Batch(
				func() tea.Msg { return echoMsg("a") },
				func() tea.Msg { return echoMsg("b") },
			)
		case "s":
			return m, func() tea.Msg { time.Sleep(time.Second); return echoMsg("slow") }
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m echoModel) View() string {
	return fmt.Sprintf("w=%d keys=%v echoes=%v", m.width, m.keys, m.echoes)
}

func TestDriver_DrainInitAndSize(t *testing.T) {
	d := New(t, echoModel{}, WithSize(80, 24))
	d.DrainInit()
	m := d.Model.(echoModel)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, []string{"init"}, m.echoes)
}

func TestDriver_BatchDrained(t *testing.T) {
	d := New(t, echoModel{})
	d.PressKey('!')
	assert.Equal(t, []string{"a", "b"}, d.Model.(echoModel).echoes)
}

func TestDriver_SlowCmdSkipped(t *testing.T) {
	d := New(t, echoModel{})
	d.PressKey('s')
	assert.Empty(t, d.Model.(echoModel).echoes)
}

func TestDriver_TypeSendsSpaceKeys(t *testing.T) {
	d := New(t, echoModel{})
	d.Type("a b")
	d.PressEnter()
	d.PressTab()
	assert.Equal(t, []string{"a", " ", "b", "enter", "tab"}, d.Model.(echoModel).keys)
	assert.True(t, d.ViewContains("keys=[a   b enter tab]"))
}

func TestDriver_QuitStopsInput(t *testing.T) {
	d := New(t, echoModel{})
	d.PressKey('q')
	assert.True(t, d.Quitting)
	d.PressKey('x')
	assert.Equal(t, []string{"q"}, d.Model.(echoModel).keys)
}
