package triage

import (
	"bytes"
	"testing"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogObserver_WritesClassifyAndSession(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(newTestClassifier(t, WithObserver(NewLogObserver(&buf))))

	require.NoError(t, s.Toggle(domain.SymptomChestPain))
	_, err := s.Submit(domain.LangEnglish)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=triage_classify")
	assert.Contains(t, out, "severity=high")
	assert.Contains(t, out, "rule=urgent")
	assert.Contains(t, out, "msg=triage_session")
	assert.Contains(t, out, "action=submit")
	assert.Contains(t, out, "session_id="+s.ID())
}

func TestLogObserver_LogsErrors(t *testing.T) {
	var buf bytes.Buffer
	c := newTestClassifier(t, WithObserver(NewLogObserver(&buf)))

	_, err := c.Classify(NewSelection(), domain.LangEnglish)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "at least one symptom")
}

func TestNewLogObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopObserver{}, NewLogObserver(nil))
}

func TestMultiObserver_FansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	c := newTestClassifier(t, WithObserver(MultiObserver{a, nil, b}))

	_, err := c.ClassifyIDs([]domain.SymptomID{domain.SymptomFever}, "", domain.LangEnglish)
	require.NoError(t, err)
	assert.Len(t, a.classifies, 1)
	assert.Len(t, b.classifies, 1)
}
