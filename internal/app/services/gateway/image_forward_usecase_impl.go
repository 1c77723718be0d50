package gateway

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"time"
)

type imageForwardUsecase struct {
	ImagingClient        contracts.ImagingClient
	SessionService       contracts.SessionService
	UploadForwardTimeout time.Duration
}

func NewImageForwardUsecase(
	imagingClient contracts.ImagingClient,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) contracts.ImageForwardUsecase {
	return &imageForwardUsecase{
		ImagingClient:        imagingClient,
		SessionService:       sessionService,
		UploadForwardTimeout: time.Duration(internalConfig.Services.UploadForwardTimeoutInSeconds) * time.Second,
	}
}

func (uc *imageForwardUsecase) ForwardUpload(ctx context.Context, request *requests.ForwardUpload) (*responses.UploadImage, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	uploadRequest := &requests.UploadImage{
		ImageType:      request.ImageType,
		ConsultationID: request.ConsultationID,
		UserID:         session.UserID,
		Filename:       request.Filename,
		ContentType:    request.ContentType,
		Size:           request.Size,
		File:           request.File,
	}

	forwardCtx, cancel := context.WithTimeout(ctx, uc.UploadForwardTimeout)
	defer cancel()

	return uc.ImagingClient.UploadImage(forwardCtx, uploadRequest)
}
