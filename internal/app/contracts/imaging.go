package contracts

import (
	"context"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
)

type ImagingUsecase interface {
	UploadImage(ctx context.Context, request *requests.UploadImage) (*responses.UploadImage, error)
	GetImageAnalysis(ctx context.Context, request *requests.GetImageAnalysis) (*responses.GetImageAnalysis, error)
	DownloadImage(ctx context.Context, request *requests.DownloadImage) (*responses.DownloadImage, error)
	GetImagingStats(ctx context.Context) (*responses.ImagingStats, error)
}

type MedicalImageRepository interface {
	CreateMedicalImage(ctx context.Context, imageModel *models.MedicalImage) (documentID string, err error)
	FindMedicalImageByImageID(ctx context.Context, imageID string) (*models.MedicalImage, error)
	UpdateAnalysisStatus(ctx context.Context, imageID string, status models.AnalysisStatus) error
}

// ImagingClient forwards uploads from the gateway to the imaging service.
type ImagingClient interface {
	UploadImage(ctx context.Context, request *requests.UploadImage) (*responses.UploadImage, error)
}

// ImageForwardUsecase attributes an upload to the authenticated user and
// hands it to the imaging service.
type ImageForwardUsecase interface {
	ForwardUpload(ctx context.Context, request *requests.ForwardUpload) (*responses.UploadImage, error)
}
