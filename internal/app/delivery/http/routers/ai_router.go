package routers

import (
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/services/ai"
	"medflow-service/internal/app/services/platform"

	"github.com/go-chi/chi/v5"
)

func SetupAIRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	platformController *platform.PlatformController,
	aiController *ai.AIController,
) {
	applyBaseMiddlewares(router, internalConfig, middlewares)

	attachPlatformRoutes(router, platformController)

	router.Route("/ai", func(r chi.Router) {
		attachAIRoutes(r, aiController)
	})
}

func attachAIRoutes(router chi.Router, aiController *ai.AIController) {
	router.Post("/analyze-symptoms", aiController.AnalyzeSymptoms)
	router.Post("/differential-diagnosis", aiController.GenerateDifferentialDiagnosis)
	router.Post("/analyze-image", aiController.AnalyzeImage)
	router.Get("/models/status", aiController.GetModelStatus)
}
