package clients

import (
	"bytes"
	"context"
	"fmt"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type aiClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

var (
	aiClientInstance contracts.AIClient
	onceAIClient     sync.Once
)

func NewAIClient(baseUrl string, logger *zap.Logger) contracts.AIClient {
	onceAIClient.Do(func() {
		aiClientInstance = &aiClient{
			BaseUrl:    baseUrl,
			HTTPClient: &http.Client{},
			Log:        logger,
		}
	})
	return aiClientInstance
}

func (c *aiClient) AnalyzeSymptoms(ctx context.Context, request *requests.AnalyzeSymptoms) (*responses.SymptomAnalysis, error) {
	analysis := new(responses.SymptomAnalysis)
	err := c.postJSON(ctx, "/ai/analyze-symptoms", request, analysis)
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

func (c *aiClient) GenerateDifferentialDiagnosis(ctx context.Context, request *requests.DifferentialDiagnosis) (*responses.DifferentialDiagnosis, error) {
	diagnosis := new(responses.DifferentialDiagnosis)
	err := c.postJSON(ctx, "/ai/differential-diagnosis", request, diagnosis)
	if err != nil {
		return nil, err
	}
	return diagnosis, nil
}

func (c *aiClient) AnalyzeImage(ctx context.Context, request *requests.AnalyzeImage) (*responses.ImageAnalysis, error) {
	analysis := new(responses.ImageAnalysis)
	err := c.postJSON(ctx, "/ai/analyze-image", request, analysis)
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

func (c *aiClient) postJSON(ctx context.Context, path string, request interface{}, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+path, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeoutError(err) {
			c.Log.Error("aiClient request timed out",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, path),
				zap.Error(err),
			)
			return exceptions.ErrDownstreamTimeout(err, constvars.ServiceNameAI)
		}
		c.Log.Error("aiClient request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return exceptions.ErrDownstreamUnavailable(err, constvars.ServiceNameAI)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		errStatus := fmt.Errorf("unexpected status %d from %s", resp.StatusCode, constvars.ServiceNameAI)
		return exceptions.ErrDownstreamUnavailable(errStatus, constvars.ServiceNameAI)
	}

	return decodeEnvelope(resp.Body, constvars.ServiceNameAI, out)
}
