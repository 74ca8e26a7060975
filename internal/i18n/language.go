package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/sehat/internal/domain"
	"golang.org/x/text/language"
)

// languageAliases accepts the English and native names users type.
var languageAliases = map[string]domain.Language{
	"english": domain.LangEnglish,
	"hindi":   domain.LangHindi,
	"हिन्दी":  domain.LangHindi,
	"हिंदी":   domain.LangHindi,
	"punjabi": domain.LangPunjabi,
	"panjabi": domain.LangPunjabi,
	"ਪੰਜਾਬੀ":  domain.LangPunjabi,
}

// Matcher order must follow domain.Languages so the match index maps back.
var supportedTags = []language.Tag{
	language.MustParse("en"),
	language.MustParse("hi"),
	language.MustParse("pa"),
}

var matcher = language.NewMatcher(supportedTags)

// ParseLanguage maps user input to a supported language. It accepts codes
// ("hi"), BCP 47 tags ("pa-Guru-IN", "en-GB") and language names ("Hindi").
func ParseLanguage(s string) (domain.Language, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "" {
		return "", fmt.Errorf("empty language: %w", domain.ErrUnsupportedLanguage)
	}
	if l, ok := languageAliases[norm]; ok {
		return l, nil
	}

	tag, err := language.Parse(norm)
	if err != nil {
		return "", fmt.Errorf("%q: %w", s, domain.ErrUnsupportedLanguage)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("%q: %w", s, domain.ErrUnsupportedLanguage)
	}
	// The matcher maps related languages (ur, mr, bn) onto a supported one.
	// Only regional variants of a supported base are accepted.
	want, _ := supportedTags[idx].Base()
	if got, _ := tag.Base(); got != want {
		return "", fmt.Errorf("%q: %w", s, domain.ErrUnsupportedLanguage)
	}
	return domain.Languages[idx], nil
}

// Preference is the process-wide current language. Readers call Get on every
// render; nothing propagates implicitly.
type Preference struct {
	mu   sync.RWMutex
	lang domain.Language
}

// NewPreference returns a Preference set to l, or the default language if l
// is not supported.
func NewPreference(l domain.Language) *Preference {
	if !l.Valid() {
		l = domain.DefaultLanguage
	}
	return &Preference{lang: l}
}

// Get returns the current language.
func (p *Preference) Get() domain.Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lang
}

// Set changes the current language.
func (p *Preference) Set(l domain.Language) error {
	if !l.Valid() {
		return fmt.Errorf("%q: %w", l, domain.ErrUnsupportedLanguage)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lang = l
	return nil
}

// Next cycles to the following supported language and returns it.
func (p *Preference) Next() domain.Language {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, l := range domain.Languages {
		if l == p.lang {
			p.lang = domain.Languages[(i+1)%len(domain.Languages)]
			return p.lang
		}
	}
	p.lang = domain.DefaultLanguage
	return p.lang
}
