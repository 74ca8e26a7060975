package cli

import (
	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*languageFlag)(nil)

// languageFlag is a pflag.Value that accepts anything i18n.ParseLanguage does.
type languageFlag struct {
	value domain.Language
	set   bool
}

func (f *languageFlag) String() string {
	return string(f.value)
}

func (f *languageFlag) Set(s string) error {
	l, err := i18n.ParseLanguage(s)
	if err != nil {
		return err
	}
	f.value = l
	f.set = true
	return nil
}

func (f *languageFlag) Type() string { return "language" }
