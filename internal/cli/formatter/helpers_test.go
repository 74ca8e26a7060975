package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderBox_WithTitle(t *testing.T) {
	out := stripANSI(RenderBox("Result", "body text"))
	assert.Contains(t, out, "RESULT")
	assert.Contains(t, out, "body text")
	assert.Contains(t, out, "╭")
}

func TestRenderAlertBox(t *testing.T) {
	out := stripANSI(RenderAlertBox("Emergency Contact", "Emergency - 108"))
	assert.Contains(t, out, "EMERGENCY CONTACT")
	assert.Contains(t, out, "Emergency - 108")
}

func TestCheckbox(t *testing.T) {
	assert.Equal(t, "[x]", stripANSI(Checkbox(true)))
	assert.Equal(t, "[ ]", stripANSI(Checkbox(false)))
}

func TestCategoryBadge(t *testing.T) {
	assert.Equal(t, "Respiratory", stripANSI(CategoryBadge("respiratory")))
	assert.Equal(t, "--", stripANSI(CategoryBadge("")))
}

func TestSeverityIndicator(t *testing.T) {
	tests := []struct {
		sev   domain.Severity
		label string
		want  string
	}{
		{domain.SeverityHigh, "High Priority", "● High Priority"},
		{domain.SeverityMedium, "", "● MEDIUM"},
		{domain.SeverityLow, "कम प्राथमिकता", "● कम प्राथमिकता"},
		{"", "", "● UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripANSI(SeverityIndicator(tt.sev, tt.label)))
	}
}

func TestHeader_UnderlineMatchesWidth(t *testing.T) {
	lines := strings.Split(stripANSI(Header("Symptoms")), "\n")
	assert.Equal(t, "SYMPTOMS", lines[0])
	assert.Equal(t, strings.Repeat("─", 8), lines[1])
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "NAME"},
		[][]string{{"fever", "Fever"}, {"breathless", "Breathing Difficulty"}, {"x"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "ID          NAME", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "fever       Fever"))
	assert.True(t, strings.HasPrefix(lines[3], "breathless  Breathing Difficulty"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"a"}}))
}
