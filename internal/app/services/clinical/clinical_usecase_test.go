package clinical

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) AnalyzeSymptoms(ctx context.Context, request *requests.AnalyzeSymptoms) (*responses.SymptomAnalysis, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SymptomAnalysis), args.Error(1)
}

func (m *MockAIClient) GenerateDifferentialDiagnosis(ctx context.Context, request *requests.DifferentialDiagnosis) (*responses.DifferentialDiagnosis, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DifferentialDiagnosis), args.Error(1)
}

func (m *MockAIClient) AnalyzeImage(ctx context.Context, request *requests.AnalyzeImage) (*responses.ImageAnalysis, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ImageAnalysis), args.Error(1)
}

func TestGenerateDiagnosis(t *testing.T) {
	internalConfig := &config.InternalConfig{
		Services: config.AppServices{
			AIRequestTimeoutInSeconds: 5,
		},
	}

	t.Run("Delegates To AI Service", func(t *testing.T) {
		mockAIClient := new(MockAIClient)
		mockAIClient.On("GenerateDifferentialDiagnosis", mock.Anything, mock.MatchedBy(func(req *requests.DifferentialDiagnosis) bool {
			return len(req.Symptoms) == 2 && len(req.ExamFindings) == 1
		})).Return(&responses.DifferentialDiagnosis{
			Diagnoses: []responses.Diagnosis{
				{Diagnosis: "Tension Headache", Probability: 0.50, Urgency: "routine"},
			},
			Reasoning:  "patterns",
			Confidence: 0.8,
		}, nil)

		usecase := NewClinicalUsecase(mockAIClient, internalConfig)

		result, err := usecase.GenerateDiagnosis(context.Background(), &requests.GenerateDiagnosis{
			Symptoms:     []string{"headache", "nausea"},
			ExamFindings: []string{"photophobia"},
		})

		require.NoError(t, err)
		require.Len(t, result.Diagnoses, 1)
		assert.Equal(t, "Tension Headache", result.Diagnoses[0].Diagnosis)
		mockAIClient.AssertExpectations(t)
	})

	t.Run("AI Failure Propagates", func(t *testing.T) {
		mockAIClient := new(MockAIClient)
		mockAIClient.On("GenerateDifferentialDiagnosis", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		usecase := NewClinicalUsecase(mockAIClient, internalConfig)

		result, err := usecase.GenerateDiagnosis(context.Background(), &requests.GenerateDiagnosis{
			Symptoms: []string{"fever"},
		})

		require.Error(t, err)
		assert.Nil(t, result)
	})
}
