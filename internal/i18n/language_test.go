package i18n

import (
	"sync"
	"testing"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage_Accepted(t *testing.T) {
	cases := map[string]domain.Language{
		"en":         domain.LangEnglish,
		"EN":         domain.LangEnglish,
		"en-GB":      domain.LangEnglish,
		" hi ":       domain.LangHindi,
		"hi-IN":      domain.LangHindi,
		"Hindi":      domain.LangHindi,
		"हिन्दी":     domain.LangHindi,
		"pa":         domain.LangPunjabi,
		"pa-Guru-IN": domain.LangPunjabi,
		"punjabi":    domain.LangPunjabi,
		"english":    domain.LangEnglish,
	}
	for in, want := range cases {
		got, err := ParseLanguage(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseLanguage_Rejected(t *testing.T) {
	for _, in := range []string{"", "   ", "fr", "klingon!!", "zz-ZZ", "bn", "ur", "mr", "ne", "sd", "ur-PK"} {
		_, err := ParseLanguage(in)
		assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage, "input %q", in)
	}
}

func TestPreference_GetSet(t *testing.T) {
	p := NewPreference(domain.LangHindi)
	assert.Equal(t, domain.LangHindi, p.Get())

	require.NoError(t, p.Set(domain.LangPunjabi))
	assert.Equal(t, domain.LangPunjabi, p.Get())

	assert.ErrorIs(t, p.Set("fr"), domain.ErrUnsupportedLanguage)
	assert.Equal(t, domain.LangPunjabi, p.Get(), "failed set must not change value")
}

func TestNewPreference_InvalidFallsBackToDefault(t *testing.T) {
	assert.Equal(t, domain.DefaultLanguage, NewPreference("xx").Get())
}

func TestPreference_NextCycles(t *testing.T) {
	p := NewPreference(domain.LangEnglish)
	assert.Equal(t, domain.LangHindi, p.Next())
	assert.Equal(t, domain.LangPunjabi, p.Next())
	assert.Equal(t, domain.LangEnglish, p.Next())
}

func TestPreference_ConcurrentAccess(t *testing.T) {
	p := NewPreference(domain.LangEnglish)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			p.Next()
		}()
		go func() {
			defer wg.Done()
			assert.True(t, p.Get().Valid())
		}()
	}
	wg.Wait()
}

func TestLanguageNameKey_ExistsForEverySupportedLanguage(t *testing.T) {
	for _, l := range domain.Languages {
		assert.True(t, Default().Has(LanguageNameKey(l)), "language %s", l)
	}
}
