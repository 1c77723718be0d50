package gateway

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockImagingClient struct {
	mock.Mock
}

func (m *MockImagingClient) UploadImage(ctx context.Context, request *requests.UploadImage) (*responses.UploadImage, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UploadImage), args.Error(1)
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

func newForwardTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Services: config.AppServices{
			UploadForwardTimeoutInSeconds: 1,
		},
	}
}

func TestForwardUpload(t *testing.T) {
	t.Run("Attributes The Upload To The Session Owner", func(t *testing.T) {
		mockClient := new(MockImagingClient)
		mockSessions := new(MockSessionService)

		mockSessions.On("ParseSessionData", mock.Anything, "session-json").Return(&models.Session{
			SessionID: "sess-1",
			UserID:    "user-1",
			Role:      models.RolePatient,
		}, nil)
		mockClient.On("UploadImage", mock.Anything, mock.MatchedBy(func(upload *requests.UploadImage) bool {
			return upload.UserID == "user-1" &&
				upload.ImageType == "xray" &&
				upload.Filename == "chest.png"
		})).Return(&responses.UploadImage{
			ImageID:        "img-1",
			Filename:       "chest.png",
			ImageType:      "xray",
			AnalysisStatus: "completed",
		}, nil)

		usecase := NewImageForwardUsecase(mockClient, mockSessions, newForwardTestConfig())

		result, err := usecase.ForwardUpload(context.Background(), &requests.ForwardUpload{
			ImageType:   "xray",
			Filename:    "chest.png",
			ContentType: "image/png",
			Size:        14,
			File:        strings.NewReader("fake png bytes"),
			SessionData: "session-json",
		})

		require.NoError(t, err)
		assert.Equal(t, "img-1", result.ImageID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Invalid Session Data Propagates", func(t *testing.T) {
		mockClient := new(MockImagingClient)
		mockSessions := new(MockSessionService)

		mockSessions.On("ParseSessionData", mock.Anything, "garbage").Return(nil, assert.AnError)

		usecase := NewImageForwardUsecase(mockClient, mockSessions, newForwardTestConfig())

		result, err := usecase.ForwardUpload(context.Background(), &requests.ForwardUpload{
			ImageType:   "xray",
			Filename:    "chest.png",
			SessionData: "garbage",
		})

		require.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, result)
		mockClient.AssertNotCalled(t, "UploadImage")
	})

	t.Run("Downstream Failure Propagates", func(t *testing.T) {
		mockClient := new(MockImagingClient)
		mockSessions := new(MockSessionService)

		mockSessions.On("ParseSessionData", mock.Anything, "session-json").Return(&models.Session{
			SessionID: "sess-1",
			UserID:    "user-1",
			Role:      models.RolePatient,
		}, nil)
		mockClient.On("UploadImage", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		usecase := NewImageForwardUsecase(mockClient, mockSessions, newForwardTestConfig())

		result, err := usecase.ForwardUpload(context.Background(), &requests.ForwardUpload{
			ImageType:   "skin",
			Filename:    "mole.jpg",
			SessionData: "session-json",
		})

		require.Error(t, err)
		assert.Nil(t, result)
	})
}
