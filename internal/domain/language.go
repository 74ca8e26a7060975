package domain

// Language is a supported display language. Values are ISO 639-1 codes.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangPunjabi Language = "pa"
)

// DefaultLanguage is the fallback for any key missing a translation.
const DefaultLanguage = LangEnglish

// Languages lists every supported language in picker order.
var Languages = []Language{LangEnglish, LangHindi, LangPunjabi}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, s := range Languages {
		if s == l {
			return true
		}
	}
	return false
}

func (l Language) String() string { return string(l) }

// MessageKey identifies a unit of localizable text.
type MessageKey string
