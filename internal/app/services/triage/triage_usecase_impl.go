package triage

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"time"
)

type triageUsecase struct {
	AIClient         contracts.AIClient
	AIRequestTimeout time.Duration
}

func NewTriageUsecase(aiClient contracts.AIClient, internalConfig *config.InternalConfig) contracts.TriageUsecase {
	return &triageUsecase{
		AIClient:         aiClient,
		AIRequestTimeout: time.Duration(internalConfig.Services.AIRequestTimeoutInSeconds) * time.Second,
	}
}

func (uc *triageUsecase) AnalyzeConsultation(ctx context.Context, request *requests.AnalyzeTriage) (*responses.TriageAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.AIRequestTimeout)
	defer cancel()

	analysis, err := uc.AIClient.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{
		Symptoms:       request.Symptoms,
		MedicalHistory: request.MedicalHistory,
		VitalSigns:     request.VitalSigns,
	})
	if err != nil {
		return nil, err
	}

	return &responses.TriageAnalysis{
		ConsultationID:  request.ConsultationID,
		TriageLevel:     analysis.TriageLevel,
		TriageScore:     analysis.TriageScore,
		Assessment:      analysis.Assessment,
		Recommendations: analysis.Recommendations,
		Confidence:      analysis.Confidence,
	}, nil
}

// GetTriageQueue returns a static snapshot. Live queue aggregation over
// pending consultations is not wired up yet.
func (uc *triageUsecase) GetTriageQueue(ctx context.Context) (*responses.TriageQueue, error) {
	return &responses.TriageQueue{
		Critical: []responses.TriageQueueEntry{
			{ConsultationID: 1, PatientName: "John Doe", ChiefComplaint: "Chest pain", WaitTime: "0 min"},
			{ConsultationID: 5, PatientName: "Alice Smith", ChiefComplaint: "Difficulty breathing", WaitTime: "2 min"},
		},
		Urgent: []responses.TriageQueueEntry{
			{ConsultationID: 2, PatientName: "Jane Wilson", ChiefComplaint: "Severe headache", WaitTime: "15 min"},
			{ConsultationID: 6, PatientName: "Bob Johnson", ChiefComplaint: "Abdominal pain", WaitTime: "25 min"},
		},
		Routine: []responses.TriageQueueEntry{
			{ConsultationID: 3, PatientName: "Mike Brown", ChiefComplaint: "Cough", WaitTime: "45 min"},
			{ConsultationID: 4, PatientName: "Sarah Davis", ChiefComplaint: "Fatigue", WaitTime: "60 min"},
		},
	}, nil
}

func (uc *triageUsecase) GetTriageStats(ctx context.Context) (*responses.TriageStats, error) {
	return &responses.TriageStats{
		TotalPatients: 156,
		CurrentQueue:  6,
		AverageWaitTime: responses.TriageWaitTimes{
			Critical: "2 min",
			Urgent:   "20 min",
			Routine:  "52 min",
		},
		ProcessedToday: 42,
		AIAccuracy:     0.89,
	}, nil
}
