// Package symptom defines the fixed set of selectable symptoms and their
// categories, in display order.
package symptom

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
)

// Descriptor describes one selectable symptom.
type Descriptor struct {
	ID         domain.SymptomID
	Category   domain.Category
	MessageKey domain.MessageKey
	Aliases    []string // extra names accepted by Parse, lowercase
}

// Listing is a localized catalog row for building a selection UI.
type Listing struct {
	ID          domain.SymptomID `json:"id"`
	Category    domain.Category  `json:"category"`
	DisplayName string           `json:"display_name"`
}

// Catalog is the ordered, immutable symptom set.
type Catalog struct {
	order  []Descriptor
	byID   map[domain.SymptomID]Descriptor
	byName map[string]domain.SymptomID
}

// NewCatalog validates descriptors and builds a Catalog. Ids must be unique
// and the custom-category symptom, if present, must be last.
func NewCatalog(descriptors []Descriptor) (*Catalog, error) {
	c := &Catalog{
		order:  make([]Descriptor, 0, len(descriptors)),
		byID:   make(map[domain.SymptomID]Descriptor, len(descriptors)),
		byName: make(map[string]domain.SymptomID),
	}
	for i, d := range descriptors {
		if d.ID == "" {
			return nil, fmt.Errorf("descriptor %d: empty id", i)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("descriptor %d: duplicate id %q", i, d.ID)
		}
		if d.Category == domain.CategoryCustom && i != len(descriptors)-1 {
			return nil, fmt.Errorf("custom symptom %q must be listed last", d.ID)
		}
		c.order = append(c.order, d)
		c.byID[d.ID] = d
		c.byName[normalize(string(d.ID))] = d.ID
		for _, a := range d.Aliases {
			c.byName[normalize(a)] = d.ID
		}
	}
	return c, nil
}

// DefaultDescriptors is the built-in symptom list in display order.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		{ID: domain.SymptomFever, Category: domain.CategoryGeneral, MessageKey: i18n.KeySymptomFever},
		{ID: domain.SymptomHeadache, Category: domain.CategoryGeneral, MessageKey: i18n.KeySymptomHeadache},
		{ID: domain.SymptomCough, Category: domain.CategoryRespiratory, MessageKey: i18n.KeySymptomCough},
		{ID: domain.SymptomFatigue, Category: domain.CategoryGeneral, MessageKey: i18n.KeySymptomFatigue},
		{ID: domain.SymptomBodyAche, Category: domain.CategoryGeneral, MessageKey: i18n.KeySymptomBodyPain,
			Aliases: []string{"body pain", "body ache"}},
		{ID: domain.SymptomNausea, Category: domain.CategoryDigestive, MessageKey: i18n.KeySymptomNausea},
		{ID: domain.SymptomChestPain, Category: domain.CategoryCardiovascular, MessageKey: i18n.KeySymptomChestPain,
			Aliases: []string{"chest pain", "chest-pain"}},
		{ID: domain.SymptomBreathless, Category: domain.CategoryRespiratory, MessageKey: i18n.KeySymptomBreathing,
			Aliases: []string{"breathing difficulty", "shortness of breath", "breathlessness"}},
		{ID: domain.SymptomOther, Category: domain.CategoryCustom, MessageKey: i18n.KeySymptomOthers,
			Aliases: []string{"other"}},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := NewCatalog(DefaultDescriptors())
	if err != nil {
		panic(fmt.Sprintf("symptom: built-in catalog is invalid: %v", err))
	}
	return c
}

// IDs returns every symptom id in display order.
func (c *Catalog) IDs() []domain.SymptomID {
	ids := make([]domain.SymptomID, len(c.order))
	for i, d := range c.order {
		ids[i] = d.ID
	}
	return ids
}

// Get returns the descriptor for id.
func (c *Catalog) Get(id domain.SymptomID) (Descriptor, error) {
	d, ok := c.byID[id]
	if !ok {
		return Descriptor{}, &domain.UnknownSymptomError{ID: id}
	}
	return d, nil
}

// CategoryOf returns the category of id, or *domain.UnknownSymptomError.
func (c *Catalog) CategoryOf(id domain.SymptomID) (domain.Category, error) {
	d, err := c.Get(id)
	if err != nil {
		return "", err
	}
	return d.Category, nil
}

// IsCustom reports whether id is the free-text "other" symptom.
func (c *Catalog) IsCustom(id domain.SymptomID) bool {
	d, ok := c.byID[id]
	return ok && d.Category == domain.CategoryCustom
}

// Custom returns the id of the free-text symptom, if the catalog has one.
func (c *Catalog) Custom() (domain.SymptomID, bool) {
	if n := len(c.order); n > 0 && c.order[n-1].Category == domain.CategoryCustom {
		return c.order[n-1].ID, true
	}
	return "", false
}

// Parse maps user input (an id, an English display name, or an alias) to a
// symptom id. Matching ignores case, surrounding space and inner spacing.
func (c *Catalog) Parse(s string) (domain.SymptomID, error) {
	if id, ok := c.byName[normalize(s)]; ok {
		return id, nil
	}
	return "", &domain.UnknownSymptomError{ID: domain.SymptomID(strings.TrimSpace(s))}
}

// List returns the localized catalog view in display order.
func (c *Catalog) List(messages *i18n.Catalog, lang domain.Language) ([]Listing, error) {
	out := make([]Listing, 0, len(c.order))
	for _, d := range c.order {
		name, err := messages.Resolve(d.MessageKey, lang)
		if err != nil {
			return nil, fmt.Errorf("symptom %s: %w", d.ID, err)
		}
		out = append(out, Listing{ID: d.ID, Category: d.Category, DisplayName: name})
	}
	return out, nil
}

// Keys returns the message keys used by the catalog, for startup validation.
func (c *Catalog) Keys() []domain.MessageKey {
	keys := make([]domain.MessageKey, len(c.order))
	for i, d := range c.order {
		keys[i] = d.MessageKey
	}
	return keys
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
