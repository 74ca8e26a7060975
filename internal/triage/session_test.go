package triage

import (
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Initial(t *testing.T) {
	s := NewSession(newTestClassifier(t))
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, StateSelecting, s.State())
	assert.Equal(t, 0, s.Count())
	assert.Nil(t, s.Verdict())
	assert.False(t, s.CustomVisible())
}

func TestSession_ToggleCustomOnThenOff_ClearsText(t *testing.T) {
	s := NewSession(newTestClassifier(t))

	require.NoError(t, s.Toggle(domain.SymptomOther))
	assert.True(t, s.CustomVisible())
	require.NoError(t, s.SetCustomText("skin rash"))
	assert.Equal(t, "skin rash", s.CustomText())

	require.NoError(t, s.Toggle(domain.SymptomOther))
	assert.False(t, s.IsSelected(domain.SymptomOther))
	assert.False(t, s.CustomVisible())
	assert.Empty(t, s.CustomText())
}

func TestSession_SetCustomText_RequiresCustomSelected(t *testing.T) {
	s := NewSession(newTestClassifier(t))
	assert.ErrorIs(t, s.SetCustomText("x"), domain.ErrInvalidTransition)
}

func TestSession_ToggleUnknown(t *testing.T) {
	s := NewSession(newTestClassifier(t))
	var us *domain.UnknownSymptomError
	assert.True(t, errors.As(s.Toggle("sneezing"), &us))
	assert.Equal(t, 0, s.Count())
}

func TestSession_SubmitEmpty_StaysSelecting(t *testing.T) {
	s := NewSession(newTestClassifier(t))

	v, err := s.Submit(domain.LangEnglish)
	assert.Nil(t, v)
	var ie *InputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "Please select some symptoms", ie.Message)
	assert.ErrorIs(t, err, domain.ErrInsufficientInput)
	assert.Equal(t, StateSelecting, s.State())
}

func TestSession_SubmitEmpty_LocalizedMessage(t *testing.T) {
	s := NewSession(newTestClassifier(t))
	_, err := s.Submit(domain.LangHindi)
	var ie *InputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "कृपया कुछ लक्षण चुनें", ie.Message)
}

func TestSession_SubmitThenReset(t *testing.T) {
	s := NewSession(newTestClassifier(t))
	require.NoError(t, s.Toggle(domain.SymptomFever))
	require.NoError(t, s.Toggle(domain.SymptomCough))

	v, err := s.Submit(domain.LangEnglish)
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityMedium, v.Severity)
	assert.Equal(t, StateShowingVerdict, s.State())
	require.NotNil(t, s.Verdict())

	s.Reset()
	assert.Equal(t, StateSelecting, s.State())
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.CustomText())
	assert.Nil(t, s.Verdict())
}

func TestSession_NoToggleOrResubmitWhileShowingVerdict(t *testing.T) {
	s := NewSession(newTestClassifier(t))
	require.NoError(t, s.Toggle(domain.SymptomHeadache))
	_, err := s.Submit(domain.LangEnglish)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Toggle(domain.SymptomFever), domain.ErrInvalidTransition)
	_, err = s.Submit(domain.LangEnglish)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, []domain.SymptomID{domain.SymptomHeadache}, s.Selected())
}

func TestSession_VerdictIsCopy(t *testing.T) {
	s := NewSession(newTestClassifier(t))
	require.NoError(t, s.Toggle(domain.SymptomHeadache))
	v, err := s.Submit(domain.LangEnglish)
	require.NoError(t, err)

	v.Severity = domain.SeverityHigh
	v.Symptoms[0] = domain.SymptomChestPain
	got := s.Verdict()
	assert.Equal(t, domain.SeverityLow, got.Severity)
	assert.Equal(t, domain.SymptomHeadache, got.Symptoms[0])
}

func TestSession_Relocalize(t *testing.T) {
	s := NewSession(newTestClassifier(t))
	require.NoError(t, s.Relocalize(domain.LangHindi)) // no verdict yet

	require.NoError(t, s.Toggle(domain.SymptomChestPain))
	_, err := s.Submit(domain.LangEnglish)
	require.NoError(t, err)

	require.NoError(t, s.Relocalize(domain.LangHindi))
	v := s.Verdict()
	assert.Equal(t, domain.LangHindi, v.Language)
	assert.Equal(t, domain.SeverityHigh, v.Severity)
	assert.Equal(t, "हाई प्राथमिकता", v.Priority)

	assert.ErrorIs(t, s.Relocalize(domain.Language("xx")), domain.ErrUnsupportedLanguage)
}

func TestSession_ConcurrentToggles(t *testing.T) {
	s := NewSession(newTestClassifier(t))
	ids := []domain.SymptomID{
		domain.SymptomFever, domain.SymptomHeadache, domain.SymptomCough, domain.SymptomFatigue,
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id domain.SymptomID) {
			defer wg.Done()
			// Even number of toggles leaves each id deselected.
			for i := 0; i < 10; i++ {
				_ = s.Toggle(id)
			}
		}(id)
	}
	wg.Wait()
	assert.Equal(t, 0, s.Count())
}

type recordingObserver struct {
	mu          sync.Mutex
	classifies  []ClassifyEvent
	transitions []TransitionEvent
}

func (r *recordingObserver) OnClassify(e ClassifyEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classifies = append(r.classifies, e)
}

func (r *recordingObserver) OnTransition(e TransitionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, e)
}

func TestSession_EmitsEvents(t *testing.T) {
	rec := &recordingObserver{}
	s := NewSession(newTestClassifier(t, WithObserver(rec)))

	require.NoError(t, s.Toggle(domain.SymptomFever))
	_, err := s.Submit(domain.LangEnglish)
	require.NoError(t, err)
	s.Reset()

	require.Len(t, rec.classifies, 1)
	assert.Equal(t, s.ID(), rec.classifies[0].SessionID)
	assert.Equal(t, RuleMild, rec.classifies[0].Rule)

	require.Len(t, rec.transitions, 3)
	assert.Equal(t, "toggle", rec.transitions[0].Action)
	assert.Equal(t, TransitionEvent{SessionID: s.ID(), Action: "submit", From: StateSelecting, To: StateShowingVerdict}, rec.transitions[1])
	assert.Equal(t, TransitionEvent{SessionID: s.ID(), Action: "reset", From: StateShowingVerdict, To: StateSelecting}, rec.transitions[2])
}
