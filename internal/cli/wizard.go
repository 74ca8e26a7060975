package cli

import (
	"github.com/alexanderramin/sehat/internal/cli/formatter"
	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// sehatHuhTheme returns a huh theme using the Gruvbox palette.
func sehatHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// languageForm lets the user pick the current language. Each option is shown
// under its name in the current language.
func languageForm(state *SharedState, result *domain.Language) *huh.Form {
	options := make([]huh.Option[domain.Language], 0, len(domain.Languages))
	for _, l := range domain.Languages {
		label := state.App.t(i18n.LanguageNameKey(l)) + " (" + string(l) + ")"
		options = append(options, huh.NewOption(label, l))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Language]().
				Title(state.App.t(i18n.KeyLanguagePicker)).
				Options(options...).
				Value(result),
		),
	).WithTheme(sehatHuhTheme()).WithShowHelp(false)
}

// customTextForm collects the free-text description for "others".
func customTextForm(state *SharedState, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(state.App.t(i18n.KeySymptomOthers)).
				Placeholder(state.App.t(i18n.KeyDescribeSymptoms)).
				CharLimit(200).
				Value(result),
		),
	).WithTheme(sehatHuhTheme()).WithShowHelp(false)
}
