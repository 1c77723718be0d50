package ai

import (
	"context"
	"fmt"
	"math"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"sort"
	"strings"
)

type aiUsecase struct {
	Sampler Sampler
}

func NewAIUsecase(sampler Sampler) contracts.AIUsecase {
	return &aiUsecase{
		Sampler: sampler,
	}
}

func (uc *aiUsecase) AnalyzeSymptoms(ctx context.Context, request *requests.AnalyzeSymptoms) (*responses.SymptomAnalysis, error) {
	level, score := scoreSymptoms(request.Symptoms)
	score = applyHistoryRisk(score, request.MedicalHistory)

	primaryConcern := "General consultation"
	if len(request.Symptoms) > 0 {
		primaryConcern = request.Symptoms[0]
	}

	riskFactors := request.MedicalHistory
	if len(riskFactors) == 0 {
		riskFactors = []string{}
	}

	return &responses.SymptomAnalysis{
		TriageLevel: string(level),
		TriageScore: score,
		Assessment: responses.SymptomAssessment{
			PrimaryConcern:    primaryConcern,
			RiskFactors:       riskFactors,
			ClinicalReasoning: fmt.Sprintf("Based on reported symptoms and medical history, patient presents with %s priority case.", level),
			RedFlags:          collectRedFlags(request.Symptoms),
		},
		Recommendations: triageRecommendations[level],
		Confidence:      uc.Sampler.Float64InRange(0.7, 0.95),
	}, nil
}

func (uc *aiUsecase) GenerateDifferentialDiagnosis(ctx context.Context, request *requests.DifferentialDiagnosis) (*responses.DifferentialDiagnosis, error) {
	diagnoses := make([]responses.Diagnosis, 0)
	for _, symptom := range request.Symptoms {
		lowered := strings.ToLower(symptom)
		for _, group := range diagnosisGroups {
			if strings.Contains(lowered, group.Keyword) {
				for _, entry := range group.Entries {
					diagnoses = append(diagnoses, responses.Diagnosis{
						Diagnosis:   entry.Name,
						Probability: entry.Probability,
						Urgency:     string(entry.Urgency),
					})
				}
				break
			}
		}
	}

	if len(diagnoses) == 0 {
		for _, entry := range fallbackDiagnoses {
			diagnoses = append(diagnoses, responses.Diagnosis{
				Diagnosis:   entry.Name,
				Probability: entry.Probability,
				Urgency:     string(entry.Urgency),
			})
		}
	}

	sort.SliceStable(diagnoses, func(i, j int) bool {
		return diagnoses[i].Probability > diagnoses[j].Probability
	})
	if len(diagnoses) > 5 {
		diagnoses = diagnoses[:5]
	}

	return &responses.DifferentialDiagnosis{
		Diagnoses:  diagnoses,
		Reasoning:  buildDifferentialReasoning(request.Symptoms),
		Confidence: uc.Sampler.Float64InRange(0.75, 0.92),
	}, nil
}

func (uc *aiUsecase) AnalyzeImage(ctx context.Context, request *requests.AnalyzeImage) (*responses.ImageAnalysis, error) {
	templates, ok := imageFindingTemplates[models.ImageType(request.ImageType)]
	if !ok {
		templates = imageFindingTemplates[models.ImageTypeXray]
	}
	selected := templates[uc.Sampler.Intn(len(templates))]

	recommendations := standardRecommendations
	if selected.RequiresReview {
		recommendations = reviewRecommendations
	}

	return &responses.ImageAnalysis{
		Analysis: responses.ImageAnalysisDetail{
			ImageType:            request.ImageType,
			QualityAssessment:    imageQualityAssessment,
			AnatomicalStructures: imageAnatomicalStructures,
			PathologicalFindings: selected.Findings,
			TechnicalFactors:     imageTechnicalFactors,
		},
		ConfidenceScore: selected.Confidence,
		Findings:        selected.Findings,
		Recommendations: recommendations,
		RequiresReview:  selected.RequiresReview,
	}, nil
}

func (uc *aiUsecase) GetModelStatus(ctx context.Context) (map[string]responses.ModelStatus, error) {
	return modelCatalog, nil
}

// scoreSymptoms walks every rule for every reported symptom. A rule only
// displaces the current result with a strictly higher score, so equal
// scores keep the earliest match.
func scoreSymptoms(symptoms []string) (models.TriageLevel, float64) {
	level := models.TriageLevelRoutine
	score := 0.0
	for _, symptom := range symptoms {
		lowered := strings.ToLower(symptom)
		for _, rule := range symptomRules {
			if strings.Contains(lowered, rule.Keyword) && rule.Score > score {
				score = rule.Score
				level = rule.Level
			}
		}
	}
	return level, score
}

func applyHistoryRisk(score float64, medicalHistory []string) float64 {
	for _, condition := range medicalHistory {
		lowered := strings.ToLower(condition)
		for _, term := range historyRiskTerms {
			if strings.Contains(lowered, term) {
				score = math.Min(score+0.1, 1.0)
				break
			}
		}
	}
	return score
}

// collectRedFlags returns the symptoms in their reported casing so the
// clinician sees exactly what the patient said.
func collectRedFlags(symptoms []string) []string {
	redFlags := make([]string, 0)
	for _, symptom := range symptoms {
		lowered := strings.ToLower(symptom)
		for _, term := range redFlagTerms {
			if strings.Contains(lowered, term) {
				redFlags = append(redFlags, symptom)
				break
			}
		}
	}
	return redFlags
}

func buildDifferentialReasoning(symptoms []string) string {
	lines := []string{
		fmt.Sprintf("Differential diagnosis based on presenting symptoms: %s.", strings.Join(symptoms, ", ")),
		"Analysis considers symptom patterns, epidemiological factors, and clinical presentation.",
		"Further diagnostic workup may be indicated based on clinical judgment.",
	}
	return strings.Join(lines, "\n")
}
