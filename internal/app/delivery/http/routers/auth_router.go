package routers

import (
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/services/auth"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// attachAuthRoutes mounts the credential endpoints behind the brute-force
// limiter and the session endpoints behind authentication.
func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, credentialLimit func(next http.Handler) http.Handler, authController *auth.AuthController) {
	router.With(credentialLimit).Post("/register", authController.Register)
	router.With(credentialLimit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Get("/me", authController.GetCurrentUser)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
