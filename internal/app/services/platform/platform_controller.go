package platform

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"medflow-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// PlatformController serves the banner, health, and aggregate status
// endpoints. PlatformUsecase is only wired on the gateway, the other
// binaries never mount GetServicesStatus.
type PlatformController struct {
	Log             *zap.Logger
	PlatformUsecase contracts.PlatformUsecase
	ServiceName     string
	Version         string
}

func NewPlatformController(logger *zap.Logger, platformUsecase contracts.PlatformUsecase, serviceName string, internalConfig *config.InternalConfig) *PlatformController {
	return &PlatformController{
		Log:             logger,
		PlatformUsecase: platformUsecase,
		ServiceName:     serviceName,
		Version:         internalConfig.App.Version,
	}
}

// Banner and Health reply without the response envelope so that other
// services and external probes can consume them directly.
func (ctrl *PlatformController) Banner(w http.ResponseWriter, r *http.Request) {
	utils.BuildRawResponse(w, constvars.StatusOK, responses.ServiceBanner{
		Message: constvars.ServiceBanners[ctrl.ServiceName],
		Version: ctrl.Version,
	})
}

func (ctrl *PlatformController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildRawResponse(w, constvars.StatusOK, responses.HealthCheck{
		Status:  constvars.ServiceStatusHealthy,
		Service: ctrl.ServiceName,
	})
}

func (ctrl *PlatformController) GetServicesStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PlatformUsecase.CheckServices(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServicesStatusSuccessMessage, response)
}
