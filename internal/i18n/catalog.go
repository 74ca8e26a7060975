package i18n

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/alexanderramin/sehat/internal/domain"
)

// Entries maps each message key to its per-language text.
type Entries map[domain.MessageKey]map[domain.Language]string

// Catalog resolves message keys to display text. It is immutable after New.
type Catalog struct {
	fallback domain.Language
	entries  Entries
}

// New builds a catalog from entries, copying them. Every key must carry an
// entry for the fallback language and only supported languages may appear.
// All problems are reported together.
func New(fallback domain.Language, entries Entries) (*Catalog, error) {
	if !fallback.Valid() {
		return nil, fmt.Errorf("fallback %q: %w", fallback, domain.ErrUnsupportedLanguage)
	}

	var errs []error
	copied := make(Entries, len(entries))
	for key, byLang := range entries {
		if key == "" {
			errs = append(errs, errors.New("empty message key"))
			continue
		}
		if text, ok := byLang[fallback]; !ok || text == "" {
			errs = append(errs, fmt.Errorf("key %q: missing %s entry", key, fallback))
		}
		m := make(map[domain.Language]string, len(byLang))
		for lang, text := range byLang {
			if !lang.Valid() {
				errs = append(errs, fmt.Errorf("key %q: %w %q", key, domain.ErrUnsupportedLanguage, lang))
				continue
			}
			m[lang] = text
		}
		copied[key] = m
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Catalog{fallback: fallback, entries: copied}, nil
}

// Resolve returns the text for key in lang, falling back to the catalog's
// default language when lang has no entry. A key absent from the catalog
// yields *domain.MissingKeyError.
func (c *Catalog) Resolve(key domain.MessageKey, lang domain.Language) (string, error) {
	byLang, ok := c.entries[key]
	if !ok {
		return "", &domain.MissingKeyError{Key: key}
	}
	if text, ok := byLang[lang]; ok && text != "" {
		return text, nil
	}
	if text, ok := byLang[c.fallback]; ok {
		return text, nil
	}
	return "", &domain.MissingKeyError{Key: key}
}

// MustResolve is Resolve for keys known at compile time. It panics on a
// missing key.
func (c *Catalog) MustResolve(key domain.MessageKey, lang domain.Language) string {
	text, err := c.Resolve(key, lang)
	if err != nil {
		panic(err)
	}
	return text
}

// Resolvef resolves key and formats the result with args.
func (c *Catalog) Resolvef(key domain.MessageKey, lang domain.Language, args ...any) (string, error) {
	text, err := c.Resolve(key, lang)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(text, args...), nil
}

// Has reports whether key exists in the catalog.
func (c *Catalog) Has(key domain.MessageKey) bool {
	_, ok := c.entries[key]
	return ok
}

// Translated reports whether key has its own entry for lang, without fallback.
func (c *Catalog) Translated(key domain.MessageKey, lang domain.Language) bool {
	text, ok := c.entries[key][lang]
	return ok && text != ""
}

// Fallback returns the catalog's default language.
func (c *Catalog) Fallback() domain.Language {
	return c.fallback
}

// Keys returns all message keys in sorted order.
func (c *Catalog) Keys() []domain.MessageKey {
	keys := make([]domain.MessageKey, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Require checks that every key exists, returning all missing keys joined.
// Callers use it at startup to fail fast on catalog defects.
func (c *Catalog) Require(keys ...domain.MessageKey) error {
	var errs []error
	for _, k := range keys {
		if !c.Has(k) {
			errs = append(errs, &domain.MissingKeyError{Key: k})
		}
	}
	return errors.Join(errs...)
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(domain.DefaultLanguage, defaultEntries)
	if err != nil {
		panic(fmt.Sprintf("i18n: built-in catalog is invalid: %v", err))
	}
	return c
})

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog()
}
