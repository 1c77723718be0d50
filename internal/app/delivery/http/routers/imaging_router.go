package routers

import (
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/services/imaging"
	"medflow-service/internal/app/services/platform"

	"github.com/go-chi/chi/v5"
)

func SetupImagingRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	platformController *platform.PlatformController,
	imagingController *imaging.ImagingController,
) {
	applyBaseMiddlewares(router, internalConfig, middlewares)

	attachPlatformRoutes(router, platformController)

	router.Route("/images", func(r chi.Router) {
		attachImageRoutes(r, imagingController)
	})
}

func attachImageRoutes(router chi.Router, imagingController *imaging.ImagingController) {
	router.Post("/upload", imagingController.UploadImage)
	router.Get("/stats", imagingController.GetImagingStats)
	router.Get("/{image_id}/analysis", imagingController.GetImageAnalysis)
	router.Get("/{image_id}/download", imagingController.DownloadImage)
}
