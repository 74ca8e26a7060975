package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/sehat/internal/cli/formatter"
	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/alexanderramin/sehat/internal/triage"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type checkerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Other   key.Binding
	Analyze key.Binding
	Clear   key.Binding
}

func newCheckerKeyMap() checkerKeyMap {
	return checkerKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Other:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "describe")),
		Analyze: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "analyze")),
		Clear:   key.NewBinding(key.WithKeys("r", "c"), key.WithHelp("r", "clear")),
	}
}

// checkerView is the symptom selection screen.
type checkerView struct {
	state  *SharedState
	keys   checkerKeyMap
	cursor int
	notice string // localized validation message from the last submit
}

func newCheckerView(state *SharedState) *checkerView {
	return &checkerView{state: state, keys: newCheckerKeyMap()}
}

func (v *checkerView) ID() ViewID    { return ViewChecker }
func (v *checkerView) Title() string { return v.state.App.t(i18n.KeySymptomChecker) }

func (v *checkerView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.Toggle, v.keys.Other, v.keys.Analyze, v.keys.Clear}
}

func (v *checkerView) Init() tea.Cmd { return nil }

func (v *checkerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	ids := v.state.App.Classifier.Symptoms().IDs()
	switch {
	case key.Matches(keyMsg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, v.keys.Down):
		if v.cursor < len(ids)-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, v.keys.Toggle):
		return v, v.toggle(ids[v.cursor])
	case key.Matches(keyMsg, v.keys.Other):
		if v.state.Session.CustomVisible() {
			return v, v.describeOther()
		}
	case key.Matches(keyMsg, v.keys.Analyze):
		return v, v.analyze()
	case key.Matches(keyMsg, v.keys.Clear):
		v.state.Session.Reset()
		v.notice = ""
	}
	return v, nil
}

func (v *checkerView) toggle(id domain.SymptomID) tea.Cmd {
	sess := v.state.Session
	if err := sess.Toggle(id); err != nil {
		return reportError(err)
	}
	v.notice = ""
	// Selecting "others" goes straight to its description.
	if v.state.App.Classifier.Symptoms().IsCustom(id) && sess.CustomVisible() {
		return v.describeOther()
	}
	return nil
}

func (v *checkerView) describeOther() tea.Cmd {
	text := v.state.Session.CustomText()
	form := customTextForm(v.state, &text)
	return startWizardCmd(v.state, v.state.App.t(i18n.KeySymptomOthers), form, func() tea.Cmd {
		if err := v.state.Session.SetCustomText(strings.TrimSpace(text)); err != nil {
			return reportError(err)
		}
		return nil
	})
}

func (v *checkerView) analyze() tea.Cmd {
	_, err := v.state.Session.Submit(v.state.Lang())
	var inputErr *triage.InputError
	switch {
	case errors.As(err, &inputErr):
		v.notice = inputErr.Message
		return nil
	case err != nil:
		return reportError(err)
	}
	v.notice = ""
	return pushView(newVerdictView(v.state))
}

func (v *checkerView) View() string {
	app := v.state.App
	sess := v.state.Session

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.StyleHeader.Render(strings.ToUpper(app.t(i18n.KeySymptomChecker))) + "\n")
	b.WriteString("  " + formatter.Dim(app.t(i18n.KeyAISymptomChecker)) + "\n\n")
	b.WriteString("  " + formatter.Bold(app.t(i18n.KeySelectSymptoms)) + "\n")
	b.WriteString("  " + formatter.Dim(app.t(i18n.KeyInstructions)) + "\n\n")

	listings, err := app.Classifier.ListSymptoms(v.state.Lang())
	if err != nil {
		b.WriteString("  " + formatter.StyleRed.Render(err.Error()) + "\n")
		return b.String()
	}
	for i, l := range listings {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, formatter.Checkbox(sess.IsSelected(l.ID)), style.Render(l.DisplayName)))

		if app.Classifier.Symptoms().IsCustom(l.ID) && sess.CustomVisible() {
			text := sess.CustomText()
			if text == "" {
				text = formatter.Dim(app.t(i18n.KeyDescribeSymptoms))
			} else {
				text = formatter.StyleBlue.Render(text)
			}
			b.WriteString("        " + text + "\n")
		}
	}

	b.WriteString("\n")
	if n := sess.Count(); n > 0 {
		b.WriteString("  " + formatter.StyleGreen.Render(app.tf(i18n.KeySymptomsSelectedN, n)) + "\n")
	}
	if v.notice != "" {
		b.WriteString("  " + formatter.StyleRed.Render(v.notice) + "\n")
	}
	b.WriteString("  " + formatter.Dim(app.t(i18n.KeyDisclaimer)) + "\n")
	return b.String()
}
