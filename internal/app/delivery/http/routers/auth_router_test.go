package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/models"
	"medflow-service/internal/app/services/auth"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"medflow-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.User, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.User), args.Error(1)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

func (m *MockAuthUsecase) GetCurrentUser(ctx context.Context, request *requests.GetCurrentUser) (*responses.User, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.User), args.Error(1)
}

func (m *MockAuthUsecase) LogoutUser(ctx context.Context, request *requests.LogoutUser) error {
	args := m.Called(ctx, request)
	return args.Error(0)
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

func newAuthRouterConfig(maxAttempts int) *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			AuthMaxAttempts:            maxAttempts,
			AuthAttemptWindowInSeconds: 60,
			AuthBlockTimeInMinutes:     15,
		},
		JWT: config.AppJWT{
			Secret:                      "test-secret",
			SessionExpiredTimeInMinutes: 30,
		},
	}
}

func newAuthTestRouter(mockAuthUsecase *MockAuthUsecase, mockSessions *MockSessionService, internalConfig *config.InternalConfig) *chi.Mux {
	logger := zap.NewNop()

	middlewareInstance := middlewares.NewMiddlewares(logger, mockSessions, internalConfig)
	authController := auth.NewAuthController(logger, mockAuthUsecase)

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, middlewareInstance.CredentialRateLimit(), authController)
	return router
}

func TestAuthRouter_Register(t *testing.T) {
	t.Run("Valid Registration Returns 200", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("RegisterUser", mock.Anything, mock.MatchedBy(func(request *requests.RegisterUser) bool {
			return request.Email == "john@example.com" && request.Role == "patient"
		})).Return(&responses.User{
			UserID:   "user-1",
			Email:    "john@example.com",
			FullName: "John Doe",
			Role:     "patient",
			IsActive: true,
		}, nil)

		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService), newAuthRouterConfig(100))

		requestBody := requests.RegisterUser{
			Email:    "john@example.com",
			Password: "Str0ng!Pass",
			FullName: "John Doe",
			Role:     "patient",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for a valid registration")

		var envelope responses.ResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, constvars.RegisterSuccessMessage, envelope.Message)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Invalid JSON Body Returns 400", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService), newAuthRouterConfig(100))

		req := httptest.NewRequest("POST", "/register", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for invalid JSON")
		mockAuthUsecase.AssertNotCalled(t, "RegisterUser")
	})

	t.Run("Weak Password Is Rejected", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService), newAuthRouterConfig(100))

		requestBody := requests.RegisterUser{
			Email:    "john@example.com",
			Password: "weakpass",
			FullName: "John Doe",
			Role:     "patient",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for a weak password")
		mockAuthUsecase.AssertNotCalled(t, "RegisterUser")
	})

	t.Run("Unknown Role Is Rejected", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService), newAuthRouterConfig(100))

		requestBody := requests.RegisterUser{
			Email:    "john@example.com",
			Password: "Str0ng!Pass",
			FullName: "John Doe",
			Role:     "wizard",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for an unknown role")
		mockAuthUsecase.AssertNotCalled(t, "RegisterUser")
	})
}

func TestAuthRouter_Login(t *testing.T) {
	t.Run("Valid Login Returns The Token Envelope", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("LoginUser", mock.Anything, mock.AnythingOfType("*requests.LoginUser")).Return(&responses.LoginUser{
			AccessToken: "jwt-token",
			TokenType:   "bearer",
			User:        responses.User{UserID: "user-1", Role: "patient"},
		}, nil)

		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService), newAuthRouterConfig(100))

		requestBody := requests.LoginUser{
			Email:    "john@example.com",
			Password: "Str0ng!Pass",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "bearer")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Bad Credentials Return 401", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("LoginUser", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidEmailOrPassword(nil))

		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService), newAuthRouterConfig(100))

		requestBody := requests.LoginUser{
			Email:    "john@example.com",
			Password: "WrongPass1!",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for bad credentials")
	})

	t.Run("Brute Force Gets Blocked", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("LoginUser", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidEmailOrPassword(nil))

		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService), newAuthRouterConfig(2))

		requestBody := requests.LoginUser{
			Email:    "john@example.com",
			Password: "WrongPass1!",
		}
		jsonBody, _ := json.Marshal(requestBody)

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			codes = append(codes, rr.Code)
		}

		assert.Equal(t, http.StatusUnauthorized, codes[0])
		assert.Equal(t, http.StatusUnauthorized, codes[1])
		assert.Equal(t, http.StatusTooManyRequests, codes[2], "the third attempt should hit the credential limiter")
		mockAuthUsecase.AssertNumberOfCalls(t, "LoginUser", 2)
	})
}

func TestAuthRouter_SessionRoutes(t *testing.T) {
	t.Run("Me Without Token Returns 401", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService), newAuthRouterConfig(100))

		req := httptest.NewRequest("GET", "/me", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized without a token")
		mockAuthUsecase.AssertNotCalled(t, "GetCurrentUser")
	})

	t.Run("Me With Valid Token Returns The User", func(t *testing.T) {
		token, err := utils.GenerateJWT("sess-1", "test-secret", time.Minute)
		require.NoError(t, err)

		mockSessions := new(MockSessionService)
		mockSessions.On("GetSessionData", mock.Anything, "sess-1").Return("session-json", nil)

		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("GetCurrentUser", mock.Anything, mock.MatchedBy(func(request *requests.GetCurrentUser) bool {
			return request.SessionData == "session-json"
		})).Return(&responses.User{UserID: "user-1", Email: "john@example.com"}, nil)

		router := newAuthTestRouter(mockAuthUsecase, mockSessions, newAuthRouterConfig(100))

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "user-1")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Logout With Valid Token Returns 200", func(t *testing.T) {
		token, err := utils.GenerateJWT("sess-1", "test-secret", time.Minute)
		require.NoError(t, err)

		mockSessions := new(MockSessionService)
		mockSessions.On("GetSessionData", mock.Anything, "sess-1").Return("session-json", nil)

		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("LogoutUser", mock.Anything, mock.AnythingOfType("*requests.LogoutUser")).Return(nil)

		router := newAuthTestRouter(mockAuthUsecase, mockSessions, newAuthRouterConfig(100))

		req := httptest.NewRequest("POST", "/logout", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})
}
