package ai

import (
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/responses"
)

// symptomRule maps a keyword found in a reported symptom to the triage
// level and score it implies. Rules are checked in order and a later rule
// only wins with a strictly higher score, so ordering is part of the
// scoring contract.
type symptomRule struct {
	Keyword string
	Level   models.TriageLevel
	Score   float64
}

var symptomRules = []symptomRule{
	{Keyword: "chest pain", Level: models.TriageLevelCritical, Score: 0.9},
	{Keyword: "difficulty breathing", Level: models.TriageLevelCritical, Score: 0.85},
	{Keyword: "severe headache", Level: models.TriageLevelUrgent, Score: 0.7},
	{Keyword: "fever", Level: models.TriageLevelUrgent, Score: 0.6},
	{Keyword: "nausea", Level: models.TriageLevelRoutine, Score: 0.3},
	{Keyword: "cough", Level: models.TriageLevelRoutine, Score: 0.4},
	{Keyword: "fatigue", Level: models.TriageLevelRoutine, Score: 0.2},
	{Keyword: "dizziness", Level: models.TriageLevelUrgent, Score: 0.5},
	{Keyword: "abdominal pain", Level: models.TriageLevelUrgent, Score: 0.6},
	{Keyword: "shortness of breath", Level: models.TriageLevelCritical, Score: 0.8},
}

// historyRiskTerms raise the triage score by 0.1 for every history entry
// mentioning one of them, capped at 1.0. The level itself is not changed.
var historyRiskTerms = []string{"diabetes", "heart", "hypertension"}

// redFlagTerms mark reported symptoms that must always be surfaced to the
// clinician verbatim, regardless of the computed level.
var redFlagTerms = []string{"chest pain", "difficulty breathing", "severe"}

var triageRecommendations = map[models.TriageLevel][]string{
	models.TriageLevelCritical: {
		"Seek immediate emergency care",
		"Call 911 if symptoms worsen",
		"Do not drive yourself to hospital",
	},
	models.TriageLevelUrgent: {
		"Schedule urgent care visit within 24 hours",
		"Monitor symptoms closely",
		"Seek immediate care if symptoms worsen",
	},
	models.TriageLevelRoutine: {
		"Schedule appointment with primary care physician",
		"Rest and stay hydrated",
		"Monitor symptoms for changes",
	},
}

type diagnosisEntry struct {
	Name        string
	Probability float64
	Urgency     models.TriageLevel
}

// diagnosisGroup lists the differential candidates for one presenting
// complaint. Only the first group whose keyword matches a symptom
// contributes, so broader keywords must come after more specific ones.
type diagnosisGroup struct {
	Keyword string
	Entries []diagnosisEntry
}

var diagnosisGroups = []diagnosisGroup{
	{
		Keyword: "chest pain",
		Entries: []diagnosisEntry{
			{Name: "Myocardial Infarction", Probability: 0.15, Urgency: models.TriageLevelCritical},
			{Name: "Angina Pectoris", Probability: 0.25, Urgency: models.TriageLevelUrgent},
			{Name: "Costochondritis", Probability: 0.30, Urgency: models.TriageLevelRoutine},
			{Name: "Gastroesophageal Reflux", Probability: 0.20, Urgency: models.TriageLevelRoutine},
			{Name: "Pulmonary Embolism", Probability: 0.10, Urgency: models.TriageLevelCritical},
		},
	},
	{
		Keyword: "fever",
		Entries: []diagnosisEntry{
			{Name: "Viral Upper Respiratory Infection", Probability: 0.40, Urgency: models.TriageLevelRoutine},
			{Name: "Bacterial Pneumonia", Probability: 0.20, Urgency: models.TriageLevelUrgent},
			{Name: "Urinary Tract Infection", Probability: 0.15, Urgency: models.TriageLevelUrgent},
			{Name: "Influenza", Probability: 0.25, Urgency: models.TriageLevelRoutine},
		},
	},
	{
		Keyword: "headache",
		Entries: []diagnosisEntry{
			{Name: "Tension Headache", Probability: 0.50, Urgency: models.TriageLevelRoutine},
			{Name: "Migraine", Probability: 0.30, Urgency: models.TriageLevelRoutine},
			{Name: "Cluster Headache", Probability: 0.10, Urgency: models.TriageLevelUrgent},
			{Name: "Secondary Headache", Probability: 0.10, Urgency: models.TriageLevelUrgent},
		},
	},
}

// fallbackDiagnoses is returned when no group matches any symptom.
var fallbackDiagnoses = []diagnosisEntry{
	{Name: "Viral Syndrome", Probability: 0.40, Urgency: models.TriageLevelRoutine},
	{Name: "General Medical Consultation", Probability: 0.60, Urgency: models.TriageLevelRoutine},
}

// imageFindingTemplate is one plausible read of an image of a given type.
// The multimodal model picks one per analysis.
type imageFindingTemplate struct {
	Variant        string
	Confidence     float64
	RequiresReview bool
	Findings       []string
}

var imageFindingTemplates = map[models.ImageType][]imageFindingTemplate{
	models.ImageTypeXray: {
		{
			Variant:        "normal",
			Confidence:     0.92,
			RequiresReview: false,
			Findings:       []string{"Clear lung fields", "Normal cardiac silhouette", "No acute findings"},
		},
		{
			Variant:        "pneumonia",
			Confidence:     0.78,
			RequiresReview: true,
			Findings:       []string{"Consolidation in right lower lobe", "Possible infectious process"},
		},
		{
			Variant:        "fracture",
			Confidence:     0.85,
			RequiresReview: true,
			Findings:       []string{"Possible fracture line visible", "Bone displacement noted"},
		},
	},
	models.ImageTypeSkin: {
		{
			Variant:        "normal",
			Confidence:     0.88,
			RequiresReview: false,
			Findings:       []string{"Normal skin appearance", "No concerning lesions"},
		},
		{
			Variant:        "suspicious",
			Confidence:     0.72,
			RequiresReview: true,
			Findings:       []string{"Irregular pigmentation", "Asymmetric borders", "Requires dermatology review"},
		},
	},
}

const (
	imageQualityAssessment = "Good image quality, adequate for interpretation"
	imageTechnicalFactors  = "Appropriate exposure and positioning"
)

var imageAnatomicalStructures = []string{"Clearly visible", "Adequate positioning"}

var reviewRecommendations = []string{
	"Radiologist review recommended",
	"Clinical correlation advised",
	"Follow-up imaging may be needed",
}

var standardRecommendations = []string{
	"No immediate follow-up required",
	"Continue current management",
	"Repeat if clinically indicated",
}

var modelCatalog = map[string]responses.ModelStatus{
	"medgemma_27b_text": {
		Status:       "loaded",
		ModelType:    "text-only",
		Capabilities: []string{"symptom_analysis", "differential_diagnosis", "treatment_recommendations"},
		LastUpdated:  "2024-01-15T10:00:00Z",
	},
	"medgemma_4b_multimodal": {
		Status:       "loaded",
		ModelType:    "multimodal",
		Capabilities: []string{"image_analysis", "report_generation", "image_text_correlation"},
		LastUpdated:  "2024-01-15T10:00:00Z",
	},
}
