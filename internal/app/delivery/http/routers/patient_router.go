package routers

import (
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(middlewares.Authenticate).Post("/profile", patientController.CreatePatientProfile)
	router.With(middlewares.Authenticate).Get("/profile", patientController.GetPatientProfile)
}
