package i18n

import "github.com/alexanderramin/sehat/internal/domain"

var defaultEntries = Entries{
	// App shell and home screen
	"app.name": {
		domain.LangEnglish: "Sehat Nabha",
		domain.LangHindi:   "सेहत नभा",
		domain.LangPunjabi: "ਸਿਹਤ ਨਭਾ",
	},
	"app.welcome": {
		domain.LangEnglish: "Hello! Your Health Companion",
		domain.LangHindi:   "नमस्ते! आपके स्वास्थ्य की देखभाल",
		domain.LangPunjabi: "ਸਤ ਸ੍ਰੀ ਅਕਾਲ! ਤੁਹਾਡੀ ਸਿਹਤ ਦੀ ਦੇਖਭਾਲ",
	},
	"home.video_consultation": {
		domain.LangEnglish: "Video Consultation",
		domain.LangHindi:   "वीडियो सलाह",
		domain.LangPunjabi: "ਵੀਡੀਓ ਸਲਾਹ",
	},
	"home.health_records": {
		domain.LangEnglish: "Health Records",
		domain.LangHindi:   "स्वास्थ्य रिकॉर्ड",
		domain.LangPunjabi: "ਸਿਹਤ ਰਿਕਾਰਡ",
	},
	"home.medicine_availability": {
		domain.LangEnglish: "Medicine Availability",
		domain.LangHindi:   "दवा उपलब्धता",
		domain.LangPunjabi: "ਦਵਾਈ ਉਪਲਬਧਤਾ",
	},
	"home.offline_mode": {
		domain.LangEnglish: "Offline Mode - Some features may be limited",
		domain.LangHindi:   "ऑफलाइन मोड - कुछ फीचर सीमित हो सकते हैं",
		domain.LangPunjabi: "ਆਫਲਾਈਨ ਮੋਡ - ਕੁਝ ਫੀਚਰ ਸੀਮਿਤ ਹੋ ਸਕਦੇ ਹਨ",
	},

	// Video consultation
	"video.available_doctors": {
		domain.LangEnglish: "Available Doctors",
		domain.LangHindi:   "उपलब्ध डॉक्टर",
		domain.LangPunjabi: "ਉਪਲਬਧ ਡਾਕਟਰ",
	},
	"video.available": {
		domain.LangEnglish: "Available",
		domain.LangHindi:   "उपलब्ध",
		domain.LangPunjabi: "ਉਪਲਬਧ",
	},
	"video.busy": {
		domain.LangEnglish: "Busy",
		domain.LangHindi:   "व्यस्त",
		domain.LangPunjabi: "ਵਿਅਸਤ",
	},
	"video.specialty": {
		domain.LangEnglish: "Specialty:",
		domain.LangHindi:   "विशेषज्ञता:",
		domain.LangPunjabi: "ਵਿਸ਼ੇਸ਼ਗਿਆ:",
	},
	"video.next_slot": {
		domain.LangEnglish: "Next Slot:",
		domain.LangHindi:   "अगला स्लॉट:",
		domain.LangPunjabi: "ਅਗਲਾ ਸਲਾਟ:",
	},
	"video.call_now": {
		domain.LangEnglish: "Call Now",
		domain.LangHindi:   "अभी कॉल करें",
		domain.LangPunjabi: "ਹੁਣੇ ਕਾਲ ਕਰੋ",
	},
	"video.book_appointment": {
		domain.LangEnglish: "Book Appointment",
		domain.LangHindi:   "अपॉइंटमेंट बुक करें",
		domain.LangPunjabi: "ਅਪਾਇੰਟਮੈਂਟ ਬੁੱਕ ਕਰੋ",
	},
	"video.connecting": {
		domain.LangEnglish: "Connecting...",
		domain.LangHindi:   "कनेक्ट हो रहा...",
		domain.LangPunjabi: "ਕਨੈਕਟ ਹੋ ਰਿਹਾ...",
	},

	// Health records
	"records.add_new": {
		domain.LangEnglish: "Add New Record",
		domain.LangHindi:   "नया रिकॉर्ड जोड़ें",
		domain.LangPunjabi: "ਨਵਾਂ ਰਿਕਾਰਡ ਜੋੜੋ",
	},
	"records.upload_file": {
		domain.LangEnglish: "Upload File",
		domain.LangHindi:   "फाइल अपलोड",
		domain.LangPunjabi: "ਫਾਇਲ ਅਪਲੋਡ",
	},
	"records.take_photo": {
		domain.LangEnglish: "Take Photo",
		domain.LangHindi:   "फोटो लें",
		domain.LangPunjabi: "ਫੋਟੋ ਲਓ",
	},
	"records.yours": {
		domain.LangEnglish: "Your Records",
		domain.LangHindi:   "आपके रिकॉर्ड",
		domain.LangPunjabi: "ਤੁਹਾਡੇ ਰਿਕਾਰਡ",
	},
	"records.view": {
		domain.LangEnglish: "View",
		domain.LangHindi:   "देखें",
		domain.LangPunjabi: "ਵੇਖੋ",
	},
	"records.synced": {
		domain.LangEnglish: "Synced",
		domain.LangHindi:   "सिंक हुआ",
		domain.LangPunjabi: "ਸਿੰਕ ਹੋਇਆ",
	},
	"records.local": {
		domain.LangEnglish: "Local",
		domain.LangHindi:   "लोकल",
		domain.LangPunjabi: "ਲੋਕਲ",
	},

	// Medicine availability
	"medicine.search": {
		domain.LangEnglish: "Search medicine or store",
		domain.LangHindi:   "दवा या मेडिकल स्टोर खोजें",
		domain.LangPunjabi: "ਦਵਾਈ ਜਾਂ ਮੈਡੀਕਲ ਸਟੋਰ ਖੋਜੋ",
	},
	"medicine.call_store": {
		domain.LangEnglish: "Call",
		domain.LangHindi:   "कॉल करें",
		domain.LangPunjabi: "ਕਾਲ ਕਰੋ",
	},
	"medicine.direction": {
		domain.LangEnglish: "Direction",
		domain.LangHindi:   "दिशा",
		domain.LangPunjabi: "ਦਿਸ਼ਾ",
	},
	"medicine.open": {
		domain.LangEnglish: "Open",
		domain.LangHindi:   "खुला",
		domain.LangPunjabi: "ਖੁੱਲ੍ਹਾ",
	},
	"medicine.closed": {
		domain.LangEnglish: "Closed",
		domain.LangHindi:   "बंद",
		domain.LangPunjabi: "ਬੰਦ",
	},
	"medicine.available": {
		domain.LangEnglish: "Available Medicines:",
		domain.LangHindi:   "उपलब्ध दवाएं:",
		domain.LangPunjabi: "ਉਪਲਬਧ ਦਵਾਈਆਂ:",
	},
	"medicine.out_of_stock": {
		domain.LangEnglish: "Out of Stock",
		domain.LangHindi:   "खत्म",
		domain.LangPunjabi: "ਖਤਮ",
	},

	// Symptom checker
	KeySymptomChecker: {
		domain.LangEnglish: "Symptom Checker",
		domain.LangHindi:   "लक्षण जांच",
		domain.LangPunjabi: "ਲੱਛਣ ਜਾਂਚ",
	},
	KeyAISymptomChecker: {
		domain.LangEnglish: "AI Symptom Checker",
		domain.LangHindi:   "AI लक्षण जांच",
		domain.LangPunjabi: "AI ਲੱਛਣ ਜਾਂਚ",
	},
	KeySelectSymptoms: {
		domain.LangEnglish: "Select Your Symptoms",
		domain.LangHindi:   "अपने लक्षण चुनें",
		domain.LangPunjabi: "ਆਪਣੇ ਲੱਛਣ ਚੁਣੋ",
	},
	KeyInstructions: {
		domain.LangEnglish: "Select the symptoms you are experiencing. This is guidance only, not a substitute for medical advice.",
		domain.LangHindi:   "जो लक्षण आप महसूस कर रहे हैं उन्हें चुनें। यह केवल मार्गदर्शन है, चिकित्सा सलाह का विकल्प नहीं।",
		domain.LangPunjabi: "ਜੋ ਲੱਛਣ ਤੁਸੀਂ ਮਹਿਸੂਸ ਕਰ ਰਹੇ ਹੋ ਉਨ੍ਹਾਂ ਨੂੰ ਚੁਣੋ। ਇਹ ਸਿਰਫ਼ ਮਾਰਗਦਰਸ਼ਨ ਹੈ, ਡਾਕਟਰੀ ਸਲਾਹ ਦਾ ਬਦਲ ਨਹੀਂ।",
	},
	KeyAnalyze: {
		domain.LangEnglish: "Analyze",
		domain.LangHindi:   "जांच करें",
		domain.LangPunjabi: "ਜਾਂਚ ਕਰੋ",
	},
	KeyClear: {
		domain.LangEnglish: "Clear",
		domain.LangHindi:   "साफ करें",
		domain.LangPunjabi: "ਸਾਫ਼ ਕਰੋ",
	},
	KeyResult: {
		domain.LangEnglish: "Result",
		domain.LangHindi:   "परिणाम",
		domain.LangPunjabi: "ਨਤੀਜਾ",
	},
	KeyAdvice: {
		domain.LangEnglish: "Advice:",
		domain.LangHindi:   "सलाह:",
		domain.LangPunjabi: "ਸਲਾਹ:",
	},
	KeyNewCheck: {
		domain.LangEnglish: "New Check",
		domain.LangHindi:   "नई जांच",
		domain.LangPunjabi: "ਨਵੀਂ ਜਾਂਚ",
	},
	KeyConsultDoctor: {
		domain.LangEnglish: "Consult Doctor",
		domain.LangHindi:   "डॉक्टर से मिलें",
		domain.LangPunjabi: "ਡਾਕਟਰ ਨੂੰ ਮਿਲੋ",
	},
	KeySelectPrompt: {
		domain.LangEnglish: "Please select some symptoms",
		domain.LangHindi:   "कृपया कुछ लक्षण चुनें",
		domain.LangPunjabi: "ਕਿਰਪਾ ਕਰਕੇ ਕੁਝ ਲੱਛਣ ਚੁਣੋ",
	},
	KeyEmergencyContact: {
		domain.LangEnglish: "Emergency Contact",
		domain.LangHindi:   "आपातकालीन संपर्क",
		domain.LangPunjabi: "ਐਮਰਜੈਂਸੀ ਸੰਪਰਕ",
	},
	KeyEmergencyCall: {
		domain.LangEnglish: "Emergency - %s",
		domain.LangHindi:   "आपातकाल - %s",
		domain.LangPunjabi: "ਐਮਰਜੈਂਸੀ - %s",
	},
	KeyCallDoctorNow: {
		domain.LangEnglish: "Call Doctor Immediately",
		domain.LangHindi:   "तुरंत डॉक्टर को कॉल करें",
		domain.LangPunjabi: "ਤੁਰੰਤ ਡਾਕਟਰ ਨੂੰ ਕਾਲ ਕਰੋ",
	},
	KeyDisclaimer: {
		domain.LangEnglish: "This is guidance only. Consult a doctor for serious problems.",
		domain.LangHindi:   "यह केवल मार्गदर्शन है। गंभीर समस्या के लिए डॉक्टर से मिलें।",
		domain.LangPunjabi: "ਇਹ ਸਿਰਫ਼ ਮਾਰਗਦਰਸ਼ਨ ਹੈ। ਗੰਭੀਰ ਸਮੱਸਿਆ ਲਈ ਡਾਕਟਰ ਨੂੰ ਮਿਲੋ।",
	},
	KeyOfflineChecker: {
		domain.LangEnglish: "Offline AI checker available",
		domain.LangHindi:   "ऑफलाइन AI जांच उपलब्ध",
		domain.LangPunjabi: "ਆਫਲਾਈਨ AI ਜਾਂਚ ਉਪਲਬਧ",
	},
	KeyLanguagePicker: {
		domain.LangEnglish: "Choose Language",
		domain.LangHindi:   "भाषा चुनें",
		domain.LangPunjabi: "ਭਾਸ਼ਾ ਚੁਣੋ",
	},

	// Symptoms
	KeySymptomFever: {
		domain.LangEnglish: "Fever",
		domain.LangHindi:   "बुखार",
		domain.LangPunjabi: "ਬੁਖਾਰ",
	},
	KeySymptomHeadache: {
		domain.LangEnglish: "Headache",
		domain.LangHindi:   "सिर दर्द",
		domain.LangPunjabi: "ਸਿਰ ਦਰਦ",
	},
	KeySymptomCough: {
		domain.LangEnglish: "Cough",
		domain.LangHindi:   "खांसी",
		domain.LangPunjabi: "ਖੰਘ",
	},
	KeySymptomFatigue: {
		domain.LangEnglish: "Fatigue",
		domain.LangHindi:   "थकावट",
		domain.LangPunjabi: "ਥਕਾਵਟ",
	},
	KeySymptomBodyPain: {
		domain.LangEnglish: "Body Pain",
		domain.LangHindi:   "शरीर दर्द",
		domain.LangPunjabi: "ਸਰੀਰ ਦਰਦ",
	},
	KeySymptomNausea: {
		domain.LangEnglish: "Nausea",
		domain.LangHindi:   "मतली",
		domain.LangPunjabi: "ਮਤਲੀ",
	},
	KeySymptomChestPain: {
		domain.LangEnglish: "Chest Pain",
		domain.LangHindi:   "छाती का दर्द",
		domain.LangPunjabi: "ਛਾਤੀ ਦਾ ਦਰਦ",
	},
	KeySymptomBreathing: {
		domain.LangEnglish: "Breathing Difficulty",
		domain.LangHindi:   "सांस लेने में कठिनाई",
		domain.LangPunjabi: "ਸਾਹ ਲੈਣ ਵਿੱਚ ਮੁਸ਼ਕਿਲ",
	},
	KeySymptomOthers: {
		domain.LangEnglish: "Others",
		domain.LangHindi:   "अन्य",
		domain.LangPunjabi: "ਹੋਰ",
	},
	KeyDescribeSymptoms: {
		domain.LangEnglish: "Describe your symptoms...",
		domain.LangHindi:   "अपने लक्षणों का वर्णन करें...",
		domain.LangPunjabi: "ਆਪਣੇ ਲੱਛਣਾਂ ਦਾ ਵਰਣਨ ਕਰੋ...",
	},
	KeySymptomsSelectedN: {
		domain.LangEnglish: "%d symptoms selected",
		domain.LangHindi:   "%d लक्षण चुने गए",
		domain.LangPunjabi: "%d ਲੱਛਣ ਚੁਣੇ ਗਏ",
	},

	// Verdicts
	KeyConditionUrgent: {
		domain.LangEnglish: "Urgent Medical Attention Required",
		domain.LangHindi:   "तुरंत चिकित्सा सलाह की आवश्यकता",
		domain.LangPunjabi: "ਤੁਰੰਤ ਡਾਕਟਰੀ ਸਲਾਹ ਦੀ ਲੋੜ",
	},
	KeyAdviceUrgent: {
		domain.LangEnglish: "Go to hospital immediately or call emergency services",
		domain.LangHindi:   "तुरंत अस्पताल जाएं या आपातकालीन सेवा को कॉल करें",
		domain.LangPunjabi: "ਤੁਰੰਤ ਹਸਪਤਾਲ ਜਾਓ ਜਾਂ ਐਮਰਜੈਂਸੀ ਸੇਵਾ ਨੂੰ ਕਾਲ ਕਰੋ",
	},
	KeyConditionColdFlu: {
		domain.LangEnglish: "Common Cold or Flu Symptoms",
		domain.LangHindi:   "सर्दी-जुकाम या फ्लू के लक्षण",
		domain.LangPunjabi: "ਸਰਦੀ-ਜ਼ੁਕਾਮ ਜਾਂ ਫਲੂ ਦੇ ਲੱਛਣ",
	},
	KeyAdviceColdFlu: {
		domain.LangEnglish: "Rest, drink fluids, and see a doctor if symptoms worsen",
		domain.LangHindi:   "आराम करें, पानी पिएं, और यदि लक्षण बिगड़ें तो डॉक्टर से मिलें",
		domain.LangPunjabi: "ਆਰਾਮ ਕਰੋ, ਪਾਣੀ ਪੀਓ, ਅਤੇ ਜੇ ਲੱਛਣ ਬਦਤਰ ਹੋਣ ਤਾਂ ਡਾਕਟਰ ਨੂੰ ਮਿਲੋ",
	},
	KeyConditionMultiple: {
		domain.LangEnglish: "Multiple Symptoms Present",
		domain.LangHindi:   "कई लक्षण दिखाई दे रहे हैं",
		domain.LangPunjabi: "ਕਈ ਲੱਛਣ ਦਿਖਾਈ ਦੇ ਰਹੇ ਹਨ",
	},
	KeyAdviceMultiple: {
		domain.LangEnglish: "Medical consultation recommended",
		domain.LangHindi:   "चिकित्सा सलाह लेनी चाहिए",
		domain.LangPunjabi: "ਡਾਕਟਰੀ ਸਲਾਹ ਲੈਣੀ ਚਾਹੀਦੀ ਹੈ",
	},
	KeyConditionMild: {
		domain.LangEnglish: "Mild Symptoms",
		domain.LangHindi:   "हल्के लक्षण",
		domain.LangPunjabi: "ਹਲਕੇ ਲੱਛਣ",
	},
	KeyAdviceMild: {
		domain.LangEnglish: "Home care and rest, see doctor if symptoms persist",
		domain.LangHindi:   "घरेलू इलाज और आराम, यदि लक्षण बने रहें तो डॉक्टर से मिलें",
		domain.LangPunjabi: "ਘਰੇਲੂ ਇਲਾਜ ਅਤੇ ਆਰਾਮ, ਜੇ ਲੱਛਣ ਬਣੇ ਰਹਿਣ ਤਾਂ ਡਾਕਟਰ ਨੂੰ ਮਿਲੋ",
	},
	KeyPriorityHigh: {
		domain.LangEnglish: "High Priority",
		domain.LangHindi:   "हाई प्राथमिकता",
		domain.LangPunjabi: "ਹਾਈ ਪ੍ਰਾਇਓਰਿਟੀ",
	},
	KeyPriorityMedium: {
		domain.LangEnglish: "Medium Priority",
		domain.LangHindi:   "मध्यम प्राथमिकता",
		domain.LangPunjabi: "ਮਿਡਿਅਮ ਪ੍ਰਾਇਓਰਿਟੀ",
	},
	KeyPriorityLow: {
		domain.LangEnglish: "Low Priority",
		domain.LangHindi:   "कम प्राथमिकता",
		domain.LangPunjabi: "ਲੋ ਪ੍ਰਾਇਓਰਿਟੀ",
	},

	// Language names are shown in English with the native script in every language.
	KeyLanguageEnglish: {
		domain.LangEnglish: "English",
	},
	KeyLanguageHindi: {
		domain.LangEnglish: "Hindi (हिन्दी)",
	},
	KeyLanguagePunjabi: {
		domain.LangEnglish: "Punjabi (ਪੰਜਾਬੀ)",
	},
}
