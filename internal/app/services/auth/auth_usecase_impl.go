package auth

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"medflow-service/internal/pkg/utils"
	"time"
)

type authUsecase struct {
	UserRepository            contracts.UserRepository
	PatientProfileRepository  contracts.PatientProfileRepository
	ProviderProfileRepository contracts.ProviderProfileRepository
	SessionService            contracts.SessionService
	JWTSecret                 string
	SessionExpiry             time.Duration
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	patientProfileRepository contracts.PatientProfileRepository,
	providerProfileRepository contracts.ProviderProfileRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:            userRepository,
		PatientProfileRepository:  patientProfileRepository,
		ProviderProfileRepository: providerProfileRepository,
		SessionService:            sessionService,
		JWTSecret:                 internalConfig.JWT.Secret,
		SessionExpiry:             time.Duration(internalConfig.JWT.SessionExpiredTimeInMinutes) * time.Minute,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.User, error) {
	existingUser, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	userModel := &models.User{
		Email:    request.Email,
		FullName: request.FullName,
		Password: hashedPassword,
		Role:     models.UserRole(request.Role),
		IsActive: true,
	}
	userModel.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}
	userModel.ID = userID

	err = uc.createEmptyProfile(ctx, userModel)
	if err != nil {
		return nil, err
	}

	return buildUserResponse(userModel), nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(uc.SessionExpiry),
	}
	err = uc.SessionService.CreateSession(ctx, session, uc.SessionExpiry)
	if err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(session.SessionID, uc.JWTSecret, uc.SessionExpiry)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{
		AccessToken: accessToken,
		TokenType:   constvars.TokenTypeBearer,
		User:        *buildUserResponse(user),
	}, nil
}

func (uc *authUsecase) GetCurrentUser(ctx context.Context, request *requests.GetCurrentUser) (*responses.User, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return buildUserResponse(user), nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, request *requests.LogoutUser) error {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

// createEmptyProfile gives every non-admin user a profile shell right at
// registration so profile lookups later never race against a first visit.
func (uc *authUsecase) createEmptyProfile(ctx context.Context, userModel *models.User) error {
	switch userModel.Role {
	case models.RolePatient:
		profileModel := &models.PatientProfile{UserID: userModel.ID}
		profileModel.SetCreatedAtUpdatedAt()
		_, err := uc.PatientProfileRepository.CreatePatientProfile(ctx, profileModel)
		return err
	case models.RolePhysician, models.RoleNurse, models.RoleSpecialist:
		profileModel := &models.ProviderProfile{UserID: userModel.ID}
		profileModel.SetCreatedAtUpdatedAt()
		_, err := uc.ProviderProfileRepository.CreateProviderProfile(ctx, profileModel)
		return err
	}
	return nil
}

func buildUserResponse(userModel *models.User) *responses.User {
	return &responses.User{
		UserID:    userModel.ID,
		Email:     userModel.Email,
		FullName:  userModel.FullName,
		Role:      string(userModel.Role),
		IsActive:  userModel.IsActive,
		CreatedAt: userModel.CreatedAt.Format(time.RFC3339),
	}
}
