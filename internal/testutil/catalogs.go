package testutil

import (
	"testing"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
)

// MessagesWithout returns a copy of the default message catalog with the
// given keys removed, for startup-validation and fallback tests.
func MessagesWithout(t *testing.T, drop ...domain.MessageKey) *i18n.Catalog {
	t.Helper()
	return rebuild(t, func(key domain.MessageKey, _ domain.Language) bool {
		for _, d := range drop {
			if d == key {
				return false
			}
		}
		return true
	})
}

// MessagesUntranslated returns a copy of the default catalog in which lang
// has no entries of its own, so every lookup falls back. lang must not be
// the fallback language.
func MessagesUntranslated(t *testing.T, lang domain.Language) *i18n.Catalog {
	t.Helper()
	if lang == i18n.Default().Fallback() {
		t.Fatalf("cannot strip the fallback language %s", lang)
	}
	return rebuild(t, func(_ domain.MessageKey, l domain.Language) bool {
		return l != lang
	})
}

func rebuild(t *testing.T, keep func(domain.MessageKey, domain.Language) bool) *i18n.Catalog {
	t.Helper()
	src := i18n.Default()
	entries := make(i18n.Entries)
	for _, key := range src.Keys() {
		for _, l := range domain.Languages {
			if !src.Translated(key, l) || !keep(key, l) {
				continue
			}
			text, err := src.Resolve(key, l)
			if err != nil {
				t.Fatalf("resolving %s/%s: %v", key, l, err)
			}
			if entries[key] == nil {
				entries[key] = make(map[domain.Language]string)
			}
			entries[key][l] = text
		}
	}
	c, err := i18n.New(src.Fallback(), entries)
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return c
}
