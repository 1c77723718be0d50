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

type triageClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

var (
	triageClientInstance contracts.TriageClient
	onceTriageClient     sync.Once
)

func NewTriageClient(baseUrl string, logger *zap.Logger) contracts.TriageClient {
	onceTriageClient.Do(func() {
		triageClientInstance = &triageClient{
			BaseUrl:    baseUrl,
			HTTPClient: &http.Client{},
			Log:        logger,
		}
	})
	return triageClientInstance
}

func (c *triageClient) AnalyzeTriage(ctx context.Context, request *requests.AnalyzeTriage) (*responses.TriageAnalysis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/triage/analyze", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeoutError(err) {
			c.Log.Error("triageClient request timed out",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDownstreamTimeout(err, constvars.ServiceNameTriage)
		}
		c.Log.Error("triageClient request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDownstreamUnavailable(err, constvars.ServiceNameTriage)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		errStatus := fmt.Errorf("unexpected status %d from %s", resp.StatusCode, constvars.ServiceNameTriage)
		return nil, exceptions.ErrDownstreamUnavailable(errStatus, constvars.ServiceNameTriage)
	}

	analysis := new(responses.TriageAnalysis)
	err = decodeEnvelope(resp.Body, constvars.ServiceNameTriage, analysis)
	if err != nil {
		return nil, err
	}
	return analysis, nil
}
