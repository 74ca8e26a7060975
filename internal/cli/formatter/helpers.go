package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	return renderBox(ColorDim, StyleHeader, title, content)
}

// RenderAlertBox is RenderBox with a red border and title, for emergency
// guidance.
func RenderAlertBox(title string, content string) string {
	return renderBox(ColorRed, StyleRed.Bold(true), title, content)
}

func renderBox(border lipgloss.Color, titleStyle lipgloss.Style, title, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := titleStyle.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// Checkbox renders a selection marker.
func Checkbox(checked bool) string {
	if checked {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// CategoryBadge returns a purple, capitalized category label.
func CategoryBadge(c string) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(strings.ToUpper(c[:1]) + c[1:])
}
