package contracts

import (
	"context"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	CreatePatientProfile(ctx context.Context, request *requests.CreatePatientProfile) (*responses.PatientProfile, error)
	GetPatientProfile(ctx context.Context, request *requests.GetPatientProfile) (*responses.PatientProfile, error)
}

type PatientProfileRepository interface {
	CreatePatientProfile(ctx context.Context, profileModel *models.PatientProfile) (profileID string, err error)
	FindPatientProfileByUserID(ctx context.Context, userID string) (*models.PatientProfile, error)
}

type ProviderProfileRepository interface {
	CreateProviderProfile(ctx context.Context, profileModel *models.ProviderProfile) (profileID string, err error)
	FindProviderProfileByUserID(ctx context.Context, userID string) (*models.ProviderProfile, error)
}
