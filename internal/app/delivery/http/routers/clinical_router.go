package routers

import (
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/services/clinical"
	"medflow-service/internal/app/services/platform"

	"github.com/go-chi/chi/v5"
)

func SetupClinicalRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	platformController *platform.PlatformController,
	clinicalController *clinical.ClinicalController,
) {
	applyBaseMiddlewares(router, internalConfig, middlewares)

	attachPlatformRoutes(router, platformController)

	router.Route("/clinical", func(r chi.Router) {
		attachClinicalRoutes(r, clinicalController)
	})
}

func attachClinicalRoutes(router chi.Router, clinicalController *clinical.ClinicalController) {
	router.Post("/diagnosis", clinicalController.GenerateDiagnosis)
}
