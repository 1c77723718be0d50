package clients

import (
	"context"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAIClient_AnalyzeSymptoms(t *testing.T) {
	t.Run("Unwraps Envelope On Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ai/analyze-symptoms", r.URL.Path)
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))

			var received requests.AnalyzeSymptoms
			err := json.NewDecoder(r.Body).Decode(&received)
			require.NoError(t, err)
			assert.Equal(t, []string{"fever", "cough"}, received.Symptoms)
			assert.Equal(t, []string{"asthma"}, received.MedicalHistory)

			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{
				"success": true,
				"message": "Symptom analysis completed successfully",
				"data": {
					"triage_level": "urgent",
					"triage_score": 0.8,
					"assessment": {"primary_concern": "fever", "risk_factors": ["asthma"], "clinical_reasoning": "r", "red_flags": []},
					"recommendations": ["Seek medical attention within 2-4 hours"],
					"confidence": 0.85
				}
			}`))
		}))
		defer server.Close()

		client := &aiClient{BaseUrl: server.URL, HTTPClient: server.Client(), Log: zap.NewNop()}

		result, err := client.AnalyzeSymptoms(context.Background(), &requests.AnalyzeSymptoms{
			Symptoms:       []string{"fever", "cough"},
			MedicalHistory: []string{"asthma"},
		})

		require.NoError(t, err)
		assert.Equal(t, "urgent", result.TriageLevel)
		assert.Equal(t, 0.8, result.TriageScore)
		assert.Equal(t, []string{"asthma"}, result.Assessment.RiskFactors)
	})

	t.Run("Deadline Exceeded Maps To Gateway Timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{"success": true, "data": {}}`))
		}))
		defer server.Close()

		client := &aiClient{BaseUrl: server.URL, HTTPClient: server.Client(), Log: zap.NewNop()}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		result, err := client.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: []string{"fever"}})

		require.Error(t, err)
		assert.Nil(t, result)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
	})
}

func TestAIClient_GenerateDifferentialDiagnosis(t *testing.T) {
	t.Run("Non 200 Maps To Bad Gateway", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ai/differential-diagnosis", r.URL.Path)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := &aiClient{BaseUrl: server.URL, HTTPClient: server.Client(), Log: zap.NewNop()}

		result, err := client.GenerateDifferentialDiagnosis(context.Background(), &requests.DifferentialDiagnosis{
			Symptoms: []string{"headache"},
		})

		require.Error(t, err)
		assert.Nil(t, result)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})
}

func TestAIClient_AnalyzeImage(t *testing.T) {
	t.Run("Review Flag Survives The Round Trip", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ai/analyze-image", r.URL.Path)

			var received requests.AnalyzeImage
			err := json.NewDecoder(r.Body).Decode(&received)
			require.NoError(t, err)
			assert.Equal(t, "xray/img-1.png", received.ImagePath)
			assert.Equal(t, "xray", received.ImageType)

			w.Write([]byte(`{
				"success": true,
				"message": "Image analysis completed successfully",
				"data": {
					"analysis": {"image_type": "xray", "quality_assessment": "Good quality image, suitable for analysis"},
					"confidence_score": 0.78,
					"findings": ["Possible pneumonia in lower left lobe"],
					"recommendations": ["Radiologist review recommended"],
					"requires_review": true
				}
			}`))
		}))
		defer server.Close()

		client := &aiClient{BaseUrl: server.URL, HTTPClient: server.Client(), Log: zap.NewNop()}

		result, err := client.AnalyzeImage(context.Background(), &requests.AnalyzeImage{
			ImagePath: "xray/img-1.png",
			ImageType: "xray",
		})

		require.NoError(t, err)
		assert.True(t, result.RequiresReview)
		assert.Equal(t, 0.78, result.ConfidenceScore)
		assert.Equal(t, "xray", result.Analysis.ImageType)
	})
}
