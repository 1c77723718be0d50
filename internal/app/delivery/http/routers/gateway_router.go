package routers

import (
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/services/auth"
	"medflow-service/internal/app/services/consultations"
	"medflow-service/internal/app/services/gateway"
	"medflow-service/internal/app/services/patients"
	"medflow-service/internal/app/services/platform"

	"github.com/go-chi/chi/v5"
)

// SetupGatewayRoutes mounts every route the gateway exposes. The service
// status probe stays public so orchestration tooling can poll it without a
// token, everything below /auth/me requires an authenticated session.
func SetupGatewayRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	platformController *platform.PlatformController,
	authController *auth.AuthController,
	patientController *patients.PatientController,
	consultationController *consultations.ConsultationController,
	imageForwardController *gateway.ImageForwardController,
) {
	applyBaseMiddlewares(router, internalConfig, middlewares)

	attachPlatformRoutes(router, platformController)
	router.Get("/services/status", platformController.GetServicesStatus)

	credentialLimit := middlewares.CredentialRateLimit()

	router.Route("/auth", func(r chi.Router) {
		attachAuthRoutes(r, middlewares, credentialLimit, authController)
	})

	router.Route("/patients", func(r chi.Router) {
		attachPatientRoutes(r, middlewares, patientController)
	})

	router.Route("/consultations", func(r chi.Router) {
		attachConsultationRoutes(r, middlewares, consultationController)
	})

	router.With(middlewares.Authenticate).Post("/images/upload", imageForwardController.UploadImage)
}
