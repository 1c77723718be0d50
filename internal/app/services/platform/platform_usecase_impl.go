package platform

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type platformUsecase struct {
	HealthClient contracts.HealthClient
	ServiceURLs  map[string]string
	ProbeTimeout time.Duration
}

func NewPlatformUsecase(
	healthClient contracts.HealthClient,
	internalConfig *config.InternalConfig,
) contracts.PlatformUsecase {
	return &platformUsecase{
		HealthClient: healthClient,
		ServiceURLs: map[string]string{
			constvars.ServiceNameTriage:   internalConfig.Services.TriageBaseUrl,
			constvars.ServiceNameImaging:  internalConfig.Services.ImagingBaseUrl,
			constvars.ServiceNameClinical: internalConfig.Services.ClinicalBaseUrl,
			constvars.ServiceNameAI:       internalConfig.Services.AIBaseUrl,
		},
		ProbeTimeout: time.Duration(internalConfig.Services.HealthProbeTimeoutInSeconds) * time.Second,
	}
}

// CheckServices probes every downstream service in parallel. A single slow
// or dead service only shows up in its own entry, it never fails the call.
func (uc *platformUsecase) CheckServices(ctx context.Context) (map[string]responses.ServiceStatus, error) {
	statuses := make(map[string]responses.ServiceStatus, len(uc.ServiceURLs))
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	for serviceName, baseUrl := range uc.ServiceURLs {
		// Pin per-iteration copies: required for correctness while building
		// with a pre-1.22 toolchain (go.mod originally targeted 1.22).
		serviceName, baseUrl := serviceName, baseUrl
		group.Go(func() error {
			probeCtx, cancel := context.WithTimeout(groupCtx, uc.ProbeTimeout)
			defer cancel()

			status := uc.probeService(probeCtx, baseUrl)

			mu.Lock()
			statuses[serviceName] = status
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return statuses, nil
}

func (uc *platformUsecase) probeService(ctx context.Context, baseUrl string) responses.ServiceStatus {
	healthCheck, err := uc.HealthClient.CheckHealth(ctx, baseUrl)
	if err != nil {
		return responses.ServiceStatus{
			Status: constvars.ServiceStatusUnreachable,
			Error:  err.Error(),
		}
	}
	if healthCheck == nil {
		return responses.ServiceStatus{
			Status: constvars.ServiceStatusUnhealthy,
		}
	}
	return responses.ServiceStatus{
		Status:   constvars.ServiceStatusHealthy,
		Response: healthCheck,
	}
}
