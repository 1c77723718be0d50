package patients

import (
	"context"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPatientProfileRepository struct {
	mock.Mock
}

func (m *MockPatientProfileRepository) CreatePatientProfile(ctx context.Context, profileModel *models.PatientProfile) (string, error) {
	args := m.Called(ctx, profileModel)
	return args.String(0), args.Error(1)
}

func (m *MockPatientProfileRepository) FindPatientProfileByUserID(ctx context.Context, userID string) (*models.PatientProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PatientProfile), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, expiresIn time.Duration) error {
	args := m.Called(ctx, session, expiresIn)
	return args.Error(0)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func patientSession() *models.Session {
	return &models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		Email:     "patient@example.com",
		Role:      models.RolePatient,
	}
}

func TestCreatePatientProfile(t *testing.T) {
	t.Run("Rejects Non Patients", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		mockSessions.On("ParseSessionData", mock.Anything, mock.Anything).Return(&models.Session{
			UserID: "user-2",
			Role:   models.RolePhysician,
		}, nil)

		usecase := NewPatientUsecase(new(MockPatientProfileRepository), mockSessions)

		result, err := usecase.CreatePatientProfile(context.Background(), &requests.CreatePatientProfile{SessionData: "session-json"})

		require.Error(t, err)
		assert.Nil(t, result)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
	})

	t.Run("Rejects A Second Profile", func(t *testing.T) {
		mockProfiles := new(MockPatientProfileRepository)
		mockSessions := new(MockSessionService)

		mockSessions.On("ParseSessionData", mock.Anything, mock.Anything).Return(patientSession(), nil)
		mockProfiles.On("FindPatientProfileByUserID", mock.Anything, "user-1").Return(&models.PatientProfile{ID: "profile-1"}, nil)

		usecase := NewPatientUsecase(mockProfiles, mockSessions)

		_, err := usecase.CreatePatientProfile(context.Background(), &requests.CreatePatientProfile{SessionData: "session-json"})

		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		mockProfiles.AssertNotCalled(t, "CreatePatientProfile")
	})

	t.Run("Persists The Profile For The Session Owner", func(t *testing.T) {
		mockProfiles := new(MockPatientProfileRepository)
		mockSessions := new(MockSessionService)

		mockSessions.On("ParseSessionData", mock.Anything, "session-json").Return(patientSession(), nil)
		mockProfiles.On("FindPatientProfileByUserID", mock.Anything, "user-1").Return(nil, nil)
		mockProfiles.On("CreatePatientProfile", mock.Anything, mock.MatchedBy(func(profileModel *models.PatientProfile) bool {
			return profileModel.UserID == "user-1" &&
				profileModel.DateOfBirth == "1990-04-12" &&
				profileModel.MedicalHistory == "diabetes"
		})).Return("profile-1", nil)

		usecase := NewPatientUsecase(mockProfiles, mockSessions)

		result, err := usecase.CreatePatientProfile(context.Background(), &requests.CreatePatientProfile{
			DateOfBirth:    "1990-04-12",
			Gender:         "male",
			Phone:          "+15550001111",
			MedicalHistory: "diabetes",
			SessionData:    "session-json",
		})

		require.NoError(t, err)
		assert.Equal(t, "profile-1", result.ProfileID)
		assert.Equal(t, "user-1", result.UserID)
		assert.Equal(t, "1990-04-12", result.DateOfBirth)
		assert.Equal(t, "diabetes", result.MedicalHistory)
		assert.NotEmpty(t, result.CreatedAt)
		mockProfiles.AssertExpectations(t)
	})
}

func TestGetPatientProfile(t *testing.T) {
	t.Run("Rejects Non Patients", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		mockSessions.On("ParseSessionData", mock.Anything, mock.Anything).Return(&models.Session{
			UserID: "user-9",
			Role:   models.RoleAdmin,
		}, nil)

		usecase := NewPatientUsecase(new(MockPatientProfileRepository), mockSessions)

		_, err := usecase.GetPatientProfile(context.Background(), &requests.GetPatientProfile{SessionData: "session-json"})

		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
	})

	t.Run("Missing Profile Returns Not Found", func(t *testing.T) {
		mockProfiles := new(MockPatientProfileRepository)
		mockSessions := new(MockSessionService)

		mockSessions.On("ParseSessionData", mock.Anything, mock.Anything).Return(patientSession(), nil)
		mockProfiles.On("FindPatientProfileByUserID", mock.Anything, "user-1").Return(nil, nil)

		usecase := NewPatientUsecase(mockProfiles, mockSessions)

		_, err := usecase.GetPatientProfile(context.Background(), &requests.GetPatientProfile{SessionData: "session-json"})

		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Returns The Stored Profile", func(t *testing.T) {
		mockProfiles := new(MockPatientProfileRepository)
		mockSessions := new(MockSessionService)

		mockSessions.On("ParseSessionData", mock.Anything, mock.Anything).Return(patientSession(), nil)
		mockProfiles.On("FindPatientProfileByUserID", mock.Anything, "user-1").Return(&models.PatientProfile{
			ID:             "profile-1",
			UserID:         "user-1",
			Gender:         "female",
			Allergies:      "penicillin",
			MedicalHistory: "hypertension",
		}, nil)

		usecase := NewPatientUsecase(mockProfiles, mockSessions)

		result, err := usecase.GetPatientProfile(context.Background(), &requests.GetPatientProfile{SessionData: "session-json"})

		require.NoError(t, err)
		assert.Equal(t, "profile-1", result.ProfileID)
		assert.Equal(t, "penicillin", result.Allergies)
		assert.Equal(t, "hypertension", result.MedicalHistory)
	})
}
