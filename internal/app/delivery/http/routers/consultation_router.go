package routers

import (
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/services/consultations"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, middlewares *middlewares.Middlewares, consultationController *consultations.ConsultationController) {
	router.With(middlewares.Authenticate).Post("/", consultationController.CreateConsultation)
	router.With(middlewares.Authenticate).Get("/", consultationController.FindConsultations)
	router.With(middlewares.Authenticate).Get("/{consultation_id}", consultationController.FindConsultationByID)
}
