package clients

import (
	"context"
	"fmt"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type healthClient struct {
	HTTPClient *http.Client
	Log        *zap.Logger
}

var (
	healthClientInstance contracts.HealthClient
	onceHealthClient     sync.Once
)

func NewHealthClient(logger *zap.Logger) contracts.HealthClient {
	onceHealthClient.Do(func() {
		healthClientInstance = &healthClient{
			HTTPClient: &http.Client{},
			Log:        logger,
		}
	})
	return healthClientInstance
}

// CheckHealth probes a service health endpoint. The body is decoded
// directly because health endpoints reply without the response envelope.
// A reachable service answering a non-200 status yields (nil, nil) so the
// caller can tell unhealthy apart from unreachable.
func (c *healthClient) CheckHealth(ctx context.Context, baseUrl string) (*responses.HealthCheck, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, baseUrl+"/health", nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, nil
	}

	healthCheck := new(responses.HealthCheck)
	err = json.NewDecoder(resp.Body).Decode(healthCheck)
	if err != nil {
		return nil, fmt.Errorf("decoding health response from %s: %w", baseUrl, err)
	}

	return healthCheck, nil
}
