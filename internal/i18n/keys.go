package i18n

import "github.com/alexanderramin/sehat/internal/domain"

// Symptom display names.
const (
	KeySymptomFever      domain.MessageKey = "symptom.fever"
	KeySymptomHeadache   domain.MessageKey = "symptom.headache"
	KeySymptomCough      domain.MessageKey = "symptom.cough"
	KeySymptomFatigue    domain.MessageKey = "symptom.fatigue"
	KeySymptomBodyPain   domain.MessageKey = "symptom.body_pain"
	KeySymptomNausea     domain.MessageKey = "symptom.nausea"
	KeySymptomChestPain  domain.MessageKey = "symptom.chest_pain"
	KeySymptomBreathing  domain.MessageKey = "symptom.breathing_difficulty"
	KeySymptomOthers     domain.MessageKey = "symptom.others"
	KeyDescribeSymptoms  domain.MessageKey = "symptom.describe"
	KeySymptomsSelectedN domain.MessageKey = "symptom.selected_count"
)

// Verdict text.
const (
	KeyConditionUrgent   domain.MessageKey = "verdict.condition.urgent"
	KeyAdviceUrgent      domain.MessageKey = "verdict.advice.urgent"
	KeyConditionColdFlu  domain.MessageKey = "verdict.condition.cold_flu"
	KeyAdviceColdFlu     domain.MessageKey = "verdict.advice.cold_flu"
	KeyConditionMultiple domain.MessageKey = "verdict.condition.multiple"
	KeyAdviceMultiple    domain.MessageKey = "verdict.advice.multiple"
	KeyConditionMild     domain.MessageKey = "verdict.condition.mild"
	KeyAdviceMild        domain.MessageKey = "verdict.advice.mild"
	KeyPriorityHigh      domain.MessageKey = "verdict.priority.high"
	KeyPriorityMedium    domain.MessageKey = "verdict.priority.medium"
	KeyPriorityLow       domain.MessageKey = "verdict.priority.low"
)

// Symptom checker screen.
const (
	KeySymptomChecker    domain.MessageKey = "checker.title"
	KeyAISymptomChecker  domain.MessageKey = "checker.subtitle"
	KeySelectSymptoms    domain.MessageKey = "checker.select_symptoms"
	KeyInstructions      domain.MessageKey = "checker.instructions"
	KeyAnalyze           domain.MessageKey = "checker.analyze"
	KeyClear             domain.MessageKey = "checker.clear"
	KeyResult            domain.MessageKey = "checker.result"
	KeyAdvice            domain.MessageKey = "checker.advice"
	KeyNewCheck          domain.MessageKey = "checker.new_check"
	KeyConsultDoctor     domain.MessageKey = "checker.consult_doctor"
	KeySelectPrompt      domain.MessageKey = "checker.select_prompt"
	KeyEmergencyContact  domain.MessageKey = "checker.emergency_contact"
	KeyEmergencyCall     domain.MessageKey = "checker.emergency_call"
	KeyCallDoctorNow     domain.MessageKey = "checker.call_doctor_now"
	KeyDisclaimer        domain.MessageKey = "checker.disclaimer"
	KeyOfflineChecker    domain.MessageKey = "checker.offline_available"
	KeyLanguagePicker    domain.MessageKey = "checker.choose_language"
	KeyLanguageEnglish   domain.MessageKey = "language.en"
	KeyLanguageHindi     domain.MessageKey = "language.hi"
	KeyLanguagePunjabi   domain.MessageKey = "language.pa"
)

// LanguageNameKey returns the key holding the display name of l.
func LanguageNameKey(l domain.Language) domain.MessageKey {
	return domain.MessageKey("language." + string(l))
}
