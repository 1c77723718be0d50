package clinical

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"time"
)

type clinicalUsecase struct {
	AIClient         contracts.AIClient
	AIRequestTimeout time.Duration
}

func NewClinicalUsecase(aiClient contracts.AIClient, internalConfig *config.InternalConfig) contracts.ClinicalUsecase {
	return &clinicalUsecase{
		AIClient:         aiClient,
		AIRequestTimeout: time.Duration(internalConfig.Services.AIRequestTimeoutInSeconds) * time.Second,
	}
}

func (uc *clinicalUsecase) GenerateDiagnosis(ctx context.Context, request *requests.GenerateDiagnosis) (*responses.DifferentialDiagnosis, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.AIRequestTimeout)
	defer cancel()

	return uc.AIClient.GenerateDifferentialDiagnosis(ctx, &requests.DifferentialDiagnosis{
		Symptoms:       request.Symptoms,
		PatientHistory: request.PatientHistory,
		ExamFindings:   request.ExamFindings,
	})
}
