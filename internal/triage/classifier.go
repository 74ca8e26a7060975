package triage

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/alexanderramin/sehat/internal/symptom"
)

// Classifier evaluates the rule ladder over a selection. It holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	symptoms *symptom.Catalog
	messages *i18n.Catalog
	rules    []Rule
	observer Observer
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRules replaces the default ladder.
func WithRules(rules []Rule) Option {
	return func(c *Classifier) { c.rules = rules }
}

// WithObserver attaches an observer for classification and session events.
func WithObserver(obs Observer) Option {
	return func(c *Classifier) {
		if obs != nil {
			c.observer = obs
		}
	}
}

// NewClassifier wires a classifier and checks that every message key the
// ladder can produce exists, so catalog defects fail at startup.
func NewClassifier(symptoms *symptom.Catalog, messages *i18n.Catalog, opts ...Option) (*Classifier, error) {
	c := &Classifier{
		symptoms: symptoms,
		messages: messages,
		rules:    DefaultRules,
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(c.rules) == 0 {
		return nil, errors.New("triage: rule ladder is empty")
	}
	var errs []error
	for i, r := range c.rules {
		if r.Match == nil {
			errs = append(errs, fmt.Errorf("rule %d (%s): nil predicate", i, r.Name))
		}
		if !domain.ValidSeverities[string(r.Severity)] {
			errs = append(errs, fmt.Errorf("rule %d (%s): invalid severity %q", i, r.Name, r.Severity))
		}
		if err := messages.Require(r.ConditionKey, r.AdviceKey, PriorityKey(r.Severity)); err != nil {
			errs = append(errs, fmt.Errorf("rule %d (%s): %w", i, r.Name, err))
		}
	}
	if err := messages.Require(symptoms.Keys()...); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// Symptoms returns the symptom catalog the classifier checks against.
func (c *Classifier) Symptoms() *symptom.Catalog { return c.symptoms }

// Messages returns the localization catalog used for verdict text.
func (c *Classifier) Messages() *i18n.Catalog { return c.messages }

// ListSymptoms returns the localized symptom list in display order.
func (c *Classifier) ListSymptoms(lang domain.Language) ([]symptom.Listing, error) {
	return c.symptoms.List(c.messages, lang)
}

// ClassifyIDs classifies a sequence of ids (duplicates ignored) with optional
// free text for the custom symptom.
func (c *Classifier) ClassifyIDs(ids []domain.SymptomID, customText string, lang domain.Language) (*domain.Verdict, error) {
	sel := NewSelection(ids...)
	sel.CustomText = customText
	return c.Classify(sel, lang)
}

// Classify runs the ladder over sel and renders the verdict in lang.
// Severity depends only on which ids are selected, never on lang.
func (c *Classifier) Classify(sel Selection, lang domain.Language) (*domain.Verdict, error) {
	return c.classify("", sel, lang)
}

func (c *Classifier) classify(sessionID string, sel Selection, lang domain.Language) (*domain.Verdict, error) {
	start := time.Now()
	event := ClassifyEvent{
		SessionID: sessionID,
		Symptoms:  sel.IDs(),
		Language:  lang,
		StartedAt: start,
	}

	v, rule, err := c.evaluate(sel, lang)
	event.Duration = time.Since(start)
	event.Err = err
	if v != nil {
		event.Severity = v.Severity
		event.Rule = rule
	}
	c.observer.OnClassify(event)
	return v, err
}

func (c *Classifier) evaluate(sel Selection, lang domain.Language) (*domain.Verdict, string, error) {
	if sel.Len() == 0 {
		return nil, "", domain.ErrInsufficientInput
	}
	if !lang.Valid() {
		return nil, "", fmt.Errorf("%q: %w", lang, domain.ErrUnsupportedLanguage)
	}

	facts, err := c.facts(sel)
	if err != nil {
		return nil, "", err
	}

	for _, r := range c.rules {
		if !r.Match(facts) {
			continue
		}
		v := &domain.Verdict{
			Severity:     r.Severity,
			Rule:         r.Name,
			ConditionKey: r.ConditionKey,
			AdviceKey:    r.AdviceKey,
			PriorityKey:  PriorityKey(r.Severity),
			Symptoms:     sel.IDs(),
		}
		if c.hasCustom(sel) {
			v.CustomText = sel.CustomText
		}
		c.render(v, lang)
		return v, r.Name, nil
	}
	return nil, "", errors.New("triage: no rule matched")
}

func (c *Classifier) facts(sel Selection) (Facts, error) {
	f := Facts{
		Count:      sel.Len(),
		present:    make(map[domain.SymptomID]bool, sel.Len()),
		categories: make(map[domain.Category]int),
	}
	for _, id := range sel.ids {
		cat, err := c.symptoms.CategoryOf(id)
		if err != nil {
			return Facts{}, err
		}
		f.present[id] = true
		if cat != domain.CategoryCustom {
			f.categories[cat]++
		}
	}
	return f, nil
}

func (c *Classifier) hasCustom(sel Selection) bool {
	for _, id := range sel.ids {
		if c.symptoms.IsCustom(id) {
			return true
		}
	}
	return false
}

// Localize returns a copy of v with its text rendered in lang. Severity and
// keys are unchanged.
func (c *Classifier) Localize(v *domain.Verdict, lang domain.Language) (*domain.Verdict, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("%q: %w", lang, domain.ErrUnsupportedLanguage)
	}
	cp := cloneVerdict(v)
	c.render(cp, lang)
	return cp, nil
}

func cloneVerdict(v *domain.Verdict) *domain.Verdict {
	cp := *v
	cp.Symptoms = append([]domain.SymptomID(nil), v.Symptoms...)
	return &cp
}

// render fills the verdict text. NewClassifier has already required every
// key a rule can produce.
func (c *Classifier) render(v *domain.Verdict, lang domain.Language) {
	v.Condition = c.messages.MustResolve(v.ConditionKey, lang)
	v.Advice = c.messages.MustResolve(v.AdviceKey, lang)
	v.Priority = c.messages.MustResolve(v.PriorityKey, lang)
	v.Language = lang
}
