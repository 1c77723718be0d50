package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sync"

	"go.uber.org/zap"
)

type imagingClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

var (
	imagingClientInstance contracts.ImagingClient
	onceImagingClient     sync.Once
)

func NewImagingClient(baseUrl string, logger *zap.Logger) contracts.ImagingClient {
	onceImagingClient.Do(func() {
		imagingClientInstance = &imagingClient{
			BaseUrl:    baseUrl,
			HTTPClient: &http.Client{},
			Log:        logger,
		}
	})
	return imagingClientInstance
}

func (c *imagingClient) UploadImage(ctx context.Context, request *requests.UploadImage) (*responses.UploadImage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	// Keep the original part content type so the imaging service stores the
	// file the way the client sent it.
	partHeader := make(textproto.MIMEHeader)
	partHeader.Set(constvars.HeaderContentDisposition,
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, constvars.FormFieldImage, request.Filename))
	contentType := request.ContentType
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}
	partHeader.Set(constvars.HeaderContentType, contentType)

	part, err := writer.CreatePart(partHeader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	_, err = io.Copy(part, request.File)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	writer.WriteField(constvars.FormFieldImageType, request.ImageType)
	writer.WriteField(constvars.FormFieldUserID, request.UserID)
	if request.ConsultationID != "" {
		writer.WriteField(constvars.FormFieldConsultationID, request.ConsultationID)
	}
	err = writer.Close()
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/images/upload", body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeoutError(err) {
			c.Log.Error("imagingClient upload timed out",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDownstreamTimeout(err, constvars.ServiceNameImaging)
		}
		c.Log.Error("imagingClient upload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDownstreamUnavailable(err, constvars.ServiceNameImaging)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		errStatus := fmt.Errorf("unexpected status %d from %s", resp.StatusCode, constvars.ServiceNameImaging)
		return nil, exceptions.ErrDownstreamUnavailable(errStatus, constvars.ServiceNameImaging)
	}

	uploadResponse := new(responses.UploadImage)
	err = decodeEnvelope(resp.Body, constvars.ServiceNameImaging, uploadResponse)
	if err != nil {
		return nil, err
	}
	return uploadResponse, nil
}
