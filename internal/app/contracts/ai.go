package contracts

import (
	"context"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
)

type AIUsecase interface {
	AnalyzeSymptoms(ctx context.Context, request *requests.AnalyzeSymptoms) (*responses.SymptomAnalysis, error)
	GenerateDifferentialDiagnosis(ctx context.Context, request *requests.DifferentialDiagnosis) (*responses.DifferentialDiagnosis, error)
	AnalyzeImage(ctx context.Context, request *requests.AnalyzeImage) (*responses.ImageAnalysis, error)
	GetModelStatus(ctx context.Context) (map[string]responses.ModelStatus, error)
}

// AIClient is the HTTP surface of the AI inference service as seen by the
// other services. Timeouts are owned by the caller through ctx.
type AIClient interface {
	AnalyzeSymptoms(ctx context.Context, request *requests.AnalyzeSymptoms) (*responses.SymptomAnalysis, error)
	GenerateDifferentialDiagnosis(ctx context.Context, request *requests.DifferentialDiagnosis) (*responses.DifferentialDiagnosis, error)
	AnalyzeImage(ctx context.Context, request *requests.AnalyzeImage) (*responses.ImageAnalysis, error)
}
