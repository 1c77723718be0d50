package contracts

import (
	"context"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
)

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, request *requests.CreateConsultation) (*responses.Consultation, error)
	FindConsultations(ctx context.Context, request *requests.FindConsultations) ([]responses.Consultation, error)
	FindConsultationByID(ctx context.Context, request *requests.FindConsultationByID) (*responses.Consultation, error)
}

type ConsultationRepository interface {
	CreateConsultation(ctx context.Context, consultationModel *models.Consultation) (consultationID string, err error)
	FindConsultationByID(ctx context.Context, consultationID string) (*models.Consultation, error)
	FindConsultationsByPatientID(ctx context.Context, patientID string) ([]models.Consultation, error)
	FindAllConsultations(ctx context.Context) ([]models.Consultation, error)
	UpdateConsultationTriage(ctx context.Context, consultationID string, triageLevel models.TriageLevel, triageScore float64, aiAssessment string) error
}
