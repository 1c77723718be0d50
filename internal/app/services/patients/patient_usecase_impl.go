package patients

import (
	"context"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"time"
)

type patientUsecase struct {
	PatientProfileRepository contracts.PatientProfileRepository
	SessionService           contracts.SessionService
}

func NewPatientUsecase(
	patientProfileRepository contracts.PatientProfileRepository,
	sessionService contracts.SessionService,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientProfileRepository: patientProfileRepository,
		SessionService:           sessionService,
	}
}

func (uc *patientUsecase) CreatePatientProfile(ctx context.Context, request *requests.CreatePatientProfile) (*responses.PatientProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != models.RolePatient {
		return nil, exceptions.ErrOnlyPatientsAllowed(nil)
	}

	existingProfile, err := uc.PatientProfileRepository.FindPatientProfileByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if existingProfile != nil {
		return nil, exceptions.ErrPatientProfileAlreadyExists(nil)
	}

	profileModel := &models.PatientProfile{
		UserID:           session.UserID,
		DateOfBirth:      request.DateOfBirth,
		Gender:           request.Gender,
		Phone:            request.Phone,
		Address:          request.Address,
		EmergencyContact: request.EmergencyContact,
		MedicalHistory:   request.MedicalHistory,
		Allergies:        request.Allergies,
		Medications:      request.Medications,
	}
	profileModel.SetCreatedAtUpdatedAt()

	profileID, err := uc.PatientProfileRepository.CreatePatientProfile(ctx, profileModel)
	if err != nil {
		return nil, err
	}
	profileModel.ID = profileID

	return buildPatientProfileResponse(profileModel), nil
}

func (uc *patientUsecase) GetPatientProfile(ctx context.Context, request *requests.GetPatientProfile) (*responses.PatientProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != models.RolePatient {
		return nil, exceptions.ErrOnlyPatientsAllowed(nil)
	}

	profileModel, err := uc.PatientProfileRepository.FindPatientProfileByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if profileModel == nil {
		return nil, exceptions.ErrPatientProfileNotFound(nil)
	}

	return buildPatientProfileResponse(profileModel), nil
}

func buildPatientProfileResponse(profileModel *models.PatientProfile) *responses.PatientProfile {
	return &responses.PatientProfile{
		ProfileID:        profileModel.ID,
		UserID:           profileModel.UserID,
		DateOfBirth:      profileModel.DateOfBirth,
		Gender:           profileModel.Gender,
		Phone:            profileModel.Phone,
		Address:          profileModel.Address,
		EmergencyContact: profileModel.EmergencyContact,
		MedicalHistory:   profileModel.MedicalHistory,
		Allergies:        profileModel.Allergies,
		Medications:      profileModel.Medications,
		CreatedAt:        profileModel.CreatedAt.Format(time.RFC3339),
	}
}
