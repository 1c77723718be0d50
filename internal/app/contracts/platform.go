package contracts

import (
	"context"
	"medflow-service/internal/pkg/dto/responses"
)

type PlatformUsecase interface {
	CheckServices(ctx context.Context) (map[string]responses.ServiceStatus, error)
}

// HealthClient probes a downstream health endpoint. A healthy service
// returns its health payload, a reachable but failing one returns
// (nil, nil), and a transport failure returns the error.
type HealthClient interface {
	CheckHealth(ctx context.Context, baseURL string) (*responses.HealthCheck, error)
}
