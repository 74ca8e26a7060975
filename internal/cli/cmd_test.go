package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/alexanderramin/sehat/internal/symptom"
	"github.com/alexanderramin/sehat/internal/testutil"
	"github.com/alexanderramin/sehat/internal/triage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires an App over the default catalogs with metrics on a private
// registry.
func testApp(t *testing.T) *App {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics := triage.NewMetrics(reg)

	return &App{
		Classifier:      testutil.NewTestClassifier(t, triage.WithObserver(metrics.Observer())),
		Language:        i18n.NewPreference(domain.LangEnglish),
		EmergencyNumber: "108",
		Gatherer:        reg,
		IsInteractive:   func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Root ---

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, out, "rule-based severity verdict")
	assert.Contains(t, out, "check")
	assert.Contains(t, out, "--lang")
}

func TestRootCmd_BadLangFlag(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "symptoms", "--lang", "klingon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

// --- symptoms ---

func TestSymptomsCmd_English(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "symptoms")
	require.NoError(t, err)
	assert.Contains(t, out, "Fever")
	assert.Contains(t, out, "chestpain")
	assert.Contains(t, out, "Others")
	assert.Less(t, strings.Index(out, "Fever"), strings.Index(out, "Headache"))
}

func TestSymptomsCmd_HindiJSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "symptoms", "--lang", "hi", "--json")
	require.NoError(t, err)

	var listings []symptom.Listing
	require.NoError(t, json.Unmarshal([]byte(out), &listings))
	require.Len(t, listings, 9)
	assert.Equal(t, domain.SymptomFever, listings[0].ID)

	want, err := i18n.Default().Resolve(i18n.KeySymptomFever, domain.LangHindi)
	require.NoError(t, err)
	assert.Equal(t, want, listings[0].DisplayName)
}

// --- check ---

func TestCheckCmd_ColdFlu(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "check", "fever", "cough")
	require.NoError(t, err)
	assert.Contains(t, out, "Common Cold or Flu Symptoms")
	assert.Contains(t, out, "Medium Priority")
	assert.NotContains(t, out, "Emergency - 108")
}

func TestCheckCmd_ChestPainShowsEmergency(t *testing.T) {
	app := testApp(t)
	app.EmergencyNumber = "112"
	out, err := executeCmd(t, app, "check", "chest pain")
	require.NoError(t, err)
	assert.Contains(t, out, "Urgent Medical Attention Required")
	assert.Contains(t, out, "Emergency - 112")
	assert.Contains(t, out, "Call Doctor Immediately")
}

func TestCheckCmd_CommaSeparatedJSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "check", "fever,headache,fatigue", "--json")
	require.NoError(t, err)

	var v domain.Verdict
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, domain.SeverityMedium, v.Severity)
	assert.Equal(t, triage.RuleMultiple, v.Rule)
	assert.Equal(t, domain.LangEnglish, v.Language)
}

func TestCheckCmd_OtherImpliesCustom(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "check", "headache", "--other", "blurred vision", "--json")
	require.NoError(t, err)

	var v domain.Verdict
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, []domain.SymptomID{domain.SymptomHeadache, domain.SymptomOther}, v.Symptoms)
	assert.Equal(t, "blurred vision", v.CustomText)
	assert.Equal(t, domain.SeverityLow, v.Severity)
}

func TestCheckCmd_DuplicateArgsDoNotToggleOff(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "check", "fever", "Fever", "--json")
	require.NoError(t, err)

	var v domain.Verdict
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, []domain.SymptomID{domain.SymptomFever}, v.Symptoms)
}

func TestCheckCmd_Punjabi(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "check", "headache", "--lang", "punjabi")
	require.NoError(t, err)
	want, err := i18n.Default().Resolve(i18n.KeyConditionMild, domain.LangPunjabi)
	require.NoError(t, err)
	assert.Contains(t, out, want)
}

func TestCheckCmd_EmptyLocalizedError(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "check")
	require.Error(t, err)
	assert.Equal(t, "Please select some symptoms", err.Error())
	assert.ErrorIs(t, err, domain.ErrInsufficientInput)

	_, err = executeCmd(t, testApp(t), "check", "--lang", "hi")
	require.Error(t, err)
	assert.Equal(t, "कृपया कुछ लक्षण चुनें", err.Error())
}

func TestCheckCmd_UnknownSymptom(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "check", "sneezing")
	var us *domain.UnknownSymptomError
	require.True(t, errors.As(err, &us))
}

// --- translate ---

func TestTranslateCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "translate", "checker.select_prompt")
	require.NoError(t, err)
	assert.Equal(t, "Please select some symptoms\n", out)
}

func TestTranslateCmd_MissingKey(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "translate", "no.such.key")
	var mk *domain.MissingKeyError
	require.True(t, errors.As(err, &mk))
}

func TestTranslateCmd_AllMarksFallback(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "translate", string(i18n.KeyLanguageHindi), "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "translated")
	assert.Contains(t, out, "fallback (en)")
}

// --- languages ---

func TestLanguagesCmd_MarksCurrent(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "languages", "--lang", "pa")
	require.NoError(t, err)
	assert.Contains(t, out, "▸ pa")
	assert.Contains(t, out, "en")
	assert.Contains(t, out, "hi")
}

// --- batch ---

func TestBatchCmd_LadderPasses(t *testing.T) {
	path := testutil.WriteCaseFile(t, "ladder.yaml", testutil.LadderYAML)
	out, err := executeCmd(t, testApp(t), "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "6 cases:")
	assert.Contains(t, out, "6 passed")
	assert.Contains(t, out, "highest: ● HIGH")
	assert.NotContains(t, out, "sehat_classifications_total")
}

func TestBatchCmd_FailureExitsNonZero(t *testing.T) {
	content := `{"name": "bad", "cases": [
  {"name": "wrong", "symptoms": ["headache"], "expect": {"severity": "high"}},
  {"name": "ok", "symptoms": ["cough"], "expect": {"severity": "low"}}
]}`
	path := testutil.WriteCaseFile(t, "bad.json", content)
	out, err := executeCmd(t, testApp(t), "batch", path)
	require.Error(t, err)
	assert.Equal(t, "1 of 2 case(s) did not pass", err.Error())
	assert.Contains(t, out, "severity: want high, got low")
}

func TestBatchCmd_MetricsDump(t *testing.T) {
	path := testutil.WriteCaseFile(t, "ladder.yaml", testutil.LadderYAML)
	out, err := executeCmd(t, testApp(t), "batch", path, "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `sehat_classifications_total{rule="urgent",severity="high"} 2`)
	assert.Contains(t, out, `sehat_classifications_total{rule="mild",severity="low"} 1`)
	assert.Contains(t, out, "sehat_selected_symptoms_bucket")
}

func TestBatchCmd_FileLanguageUnlessFlag(t *testing.T) {
	content := "name: hindi\nlanguage: hi\ncases:\n  - name: a\n    symptoms: [headache]\n"
	path := testutil.WriteCaseFile(t, "hi.yaml", content)

	out, err := executeCmd(t, testApp(t), "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "HINDI (HI)")

	out, err = executeCmd(t, testApp(t), "batch", path, "--lang", "pa")
	require.NoError(t, err)
	assert.Contains(t, out, "HINDI (PA)")
}

func TestBatchCmd_InvalidFile(t *testing.T) {
	path := testutil.WriteCaseFile(t, "broken.yaml", "name: x\ncases:\n  - name: a\n    symptoms: [sneezing]\n")
	_, err := executeCmd(t, testApp(t), "batch", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
}
