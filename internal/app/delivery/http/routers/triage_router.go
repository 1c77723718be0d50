package routers

import (
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/services/platform"
	"medflow-service/internal/app/services/triage"

	"github.com/go-chi/chi/v5"
)

// SetupTriageRoutes mounts the triage service endpoints. The service sits on
// the internal network behind the gateway, so its routes carry no session
// authentication.
func SetupTriageRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	platformController *platform.PlatformController,
	triageController *triage.TriageController,
) {
	applyBaseMiddlewares(router, internalConfig, middlewares)

	attachPlatformRoutes(router, platformController)

	router.Route("/triage", func(r chi.Router) {
		attachTriageRoutes(r, triageController)
	})
}

func attachTriageRoutes(router chi.Router, triageController *triage.TriageController) {
	router.Post("/analyze", triageController.AnalyzeTriage)
	router.Get("/queue", triageController.GetTriageQueue)
	router.Get("/stats", triageController.GetTriageStats)
}
