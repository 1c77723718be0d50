package contracts

import (
	"context"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
)

type TriageUsecase interface {
	AnalyzeConsultation(ctx context.Context, request *requests.AnalyzeTriage) (*responses.TriageAnalysis, error)
	GetTriageQueue(ctx context.Context) (*responses.TriageQueue, error)
	GetTriageStats(ctx context.Context) (*responses.TriageStats, error)
}

type TriageClient interface {
	AnalyzeTriage(ctx context.Context, request *requests.AnalyzeTriage) (*responses.TriageAnalysis, error)
}
