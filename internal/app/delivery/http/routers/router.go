package routers

import (
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/services/platform"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// applyBaseMiddlewares wires the chain shared by every service binary.
// Order matters: the request ID must exist before the logger runs, and the
// error handler has to wrap everything downstream of it.
func applyBaseMiddlewares(router *chi.Mux, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
}

func attachPlatformRoutes(router chi.Router, platformController *platform.PlatformController) {
	router.Get("/", platformController.Banner)
	router.Get("/health", platformController.Health)
}
