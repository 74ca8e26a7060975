package domain

// Category groups symptoms for rule predicates.
type Category string

const (
	CategoryGeneral        Category = "general"
	CategoryRespiratory    Category = "respiratory"
	CategoryCardiovascular Category = "cardiovascular"
	CategoryDigestive      Category = "digestive"
	CategoryCustom         Category = "custom"
)

// SymptomID identifies a symptom in the catalog.
type SymptomID string

const (
	SymptomFever      SymptomID = "fever"
	SymptomHeadache   SymptomID = "headache"
	SymptomCough      SymptomID = "cough"
	SymptomFatigue    SymptomID = "fatigue"
	SymptomBodyAche   SymptomID = "bodyache"
	SymptomNausea     SymptomID = "nausea"
	SymptomChestPain  SymptomID = "chestpain"
	SymptomBreathless SymptomID = "breathless"
	SymptomOther      SymptomID = "others"
)

func (id SymptomID) String() string { return string(id) }
