package platform

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPlatformUsecase struct {
	mock.Mock
}

func (m *MockPlatformUsecase) CheckServices(ctx context.Context) (map[string]responses.ServiceStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]responses.ServiceStatus), args.Error(1)
}

func newControllerTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{Version: "1.0.0"},
	}
}

func TestBanner(t *testing.T) {
	controller := NewPlatformController(zap.NewNop(), nil, constvars.ServiceNameGateway, newControllerTestConfig())

	recorder := httptest.NewRecorder()
	controller.Banner(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var banner responses.ServiceBanner
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &banner), "banner is served without the envelope")
	assert.Equal(t, constvars.BannerGateway, banner.Message)
	assert.Equal(t, "1.0.0", banner.Version)
}

func TestHealth(t *testing.T) {
	controller := NewPlatformController(zap.NewNop(), nil, constvars.ServiceNameImaging, newControllerTestConfig())

	recorder := httptest.NewRecorder()
	controller.Health(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var health responses.HealthCheck
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &health), "health is served without the envelope")
	assert.Equal(t, constvars.ServiceStatusHealthy, health.Status)
	assert.Equal(t, constvars.ServiceNameImaging, health.Service)
}

func TestGetServicesStatus(t *testing.T) {
	t.Run("Wraps The Aggregate In The Envelope", func(t *testing.T) {
		mockUsecase := new(MockPlatformUsecase)
		mockUsecase.On("CheckServices", mock.Anything).Return(map[string]responses.ServiceStatus{
			constvars.ServiceNameTriage: {Status: constvars.ServiceStatusHealthy},
			constvars.ServiceNameAI:     {Status: constvars.ServiceStatusUnreachable, Error: "connection refused"},
		}, nil)

		controller := NewPlatformController(zap.NewNop(), mockUsecase, constvars.ServiceNameGateway, newControllerTestConfig())

		recorder := httptest.NewRecorder()
		controller.GetServicesStatus(recorder, httptest.NewRequest(http.MethodGet, "/services/status", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var envelope responses.ResponseDTO
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, constvars.GetServicesStatusSuccessMessage, envelope.Message)

		statuses, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok, "data should hold the per-service map")
		assert.Len(t, statuses, 2)
	})

	t.Run("Usecase Failure Is Reported", func(t *testing.T) {
		mockUsecase := new(MockPlatformUsecase)
		mockUsecase.On("CheckServices", mock.Anything).Return(nil, assert.AnError)

		controller := NewPlatformController(zap.NewNop(), mockUsecase, constvars.ServiceNameGateway, newControllerTestConfig())

		recorder := httptest.NewRecorder()
		controller.GetServicesStatus(recorder, httptest.NewRequest(http.MethodGet, "/services/status", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
