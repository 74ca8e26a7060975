package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/sehat/internal/symptom"
)

// FormatSymptomList renders the localized catalog as a table under title.
func FormatSymptomList(title string, listings []symptom.Listing) string {
	rows := make([][]string, 0, len(listings))
	for i, l := range listings {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			StyleGreen.Render(string(l.ID)),
			Bold(l.DisplayName),
			CategoryBadge(string(l.Category)),
		})
	}

	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"#", "ID", "NAME", "CATEGORY"}, rows))
	return b.String()
}

// LanguageRow is one line of the languages listing.
type LanguageRow struct {
	Code    string
	Name    string
	Current bool
}

// FormatLanguages renders supported languages, marking the current one.
func FormatLanguages(title string, langs []LanguageRow) string {
	rows := make([][]string, 0, len(langs))
	for _, l := range langs {
		marker := "  "
		name := StyleFg.Render(l.Name)
		if l.Current {
			marker = StyleGreen.Render("▸ ")
			name = Bold(l.Name)
		}
		rows = append(rows, []string{marker + StyleBlue.Render(l.Code), name})
	}

	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"CODE", "NAME"}, rows))
	return b.String()
}
