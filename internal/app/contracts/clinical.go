package contracts

import (
	"context"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
)

type ClinicalUsecase interface {
	GenerateDiagnosis(ctx context.Context, request *requests.GenerateDiagnosis) (*responses.DifferentialDiagnosis, error)
}
