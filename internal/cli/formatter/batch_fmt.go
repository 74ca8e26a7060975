package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/triage"
)

const passRateWidth = 20

// FormatCaseResults renders a case-file run as a table plus a summary line.
func FormatCaseResults(suite string, lang domain.Language, results []triage.CaseResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		sev, rule := Dim("--"), Dim("--")
		if r.Verdict != nil {
			sev = SeverityColor(r.Verdict.Severity).Render(string(r.Verdict.Severity))
			rule = StyleFg.Render(r.Verdict.Rule)
		}
		rows = append(rows, []string{
			Bold(r.Case.Name),
			Dim(joinIDs(r.Case.Symptoms)),
			sev,
			rule,
			caseOutcome(r),
		})
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s (%s)", suite, lang)))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"CASE", "SYMPTOMS", "SEVERITY", "RULE", "RESULT"}, rows))
	b.WriteString("\n")
	sum := triage.Summarize(results)
	b.WriteString(FormatSummary(sum))
	b.WriteString("  ")
	b.WriteString(RenderPassRate(sum.Passed, sum.Total, passRateWidth))
	b.WriteString("\n")
	if sum.Highest != "" {
		b.WriteString(Dim("highest: ") + SeverityIndicator(sum.Highest, ""))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSummary renders pass/fail/error counts, colored by outcome.
func FormatSummary(s triage.Summary) string {
	parts := []string{StyleGreen.Render(fmt.Sprintf("%d passed", s.Passed))}
	if s.Failed > 0 {
		parts = append(parts, StyleRed.Render(fmt.Sprintf("%d failed", s.Failed)))
	}
	if s.Errored > 0 {
		parts = append(parts, StyleYellow.Render(fmt.Sprintf("%d errored", s.Errored)))
	}
	return fmt.Sprintf("%s %s", Bold(fmt.Sprintf("%d cases:", s.Total)), strings.Join(parts, Dim(", ")))
}

func caseOutcome(r triage.CaseResult) string {
	switch {
	case r.Err != nil:
		return StyleYellow.Render("! " + r.Err.Error())
	case r.Mismatch != "":
		return StyleRed.Render("✖ " + r.Mismatch)
	default:
		return StyleGreen.Render("✔ pass")
	}
}

func joinIDs(ids []domain.SymptomID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}
