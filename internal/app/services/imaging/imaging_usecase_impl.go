package imaging

import (
	"context"
	"fmt"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"medflow-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type imagingUsecase struct {
	MedicalImageRepository contracts.MedicalImageRepository
	Storage                contracts.Storage
	AIClient               contracts.AIClient
	ReviewNotifier         contracts.ReviewNotifier
	Log                    *zap.Logger
	BucketName             string
	PublicEndpoint         string
	AITriggerTimeout       time.Duration
	AIRequestTimeout       time.Duration
	PresignedUrlExpiry     time.Duration
}

func NewImagingUsecase(
	medicalImageRepository contracts.MedicalImageRepository,
	storage contracts.Storage,
	aiClient contracts.AIClient,
	reviewNotifier contracts.ReviewNotifier,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.ImagingUsecase {
	return &imagingUsecase{
		MedicalImageRepository: medicalImageRepository,
		Storage:                storage,
		AIClient:               aiClient,
		ReviewNotifier:         reviewNotifier,
		Log:                    logger,
		BucketName:             internalConfig.Minio.BucketName,
		PublicEndpoint:         internalConfig.Minio.PublicEndpoint,
		AITriggerTimeout:       time.Duration(internalConfig.Services.AITriggerTimeoutInSeconds) * time.Second,
		AIRequestTimeout:       time.Duration(internalConfig.Services.AIRequestTimeoutInSeconds) * time.Second,
		PresignedUrlExpiry:     time.Duration(internalConfig.Minio.PreSignedUrlExpiryTimeInHours) * time.Hour,
	}
}

func (uc *imagingUsecase) UploadImage(ctx context.Context, request *requests.UploadImage) (*responses.UploadImage, error) {
	imageID := utils.GenerateImageID()
	objectName := utils.GenerateImageObjectName(request.ImageType, imageID, request.Filename)

	contentType := request.ContentType
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	_, err := uc.Storage.UploadObject(ctx, uc.BucketName, objectName, request.File, request.Size, contentType)
	if err != nil {
		return nil, err
	}

	imageModel := &models.MedicalImage{
		ImageID:          imageID,
		UserID:           request.UserID,
		ConsultationID:   request.ConsultationID,
		OriginalFilename: request.Filename,
		ObjectName:       objectName,
		ContentType:      contentType,
		ImageType:        models.ImageType(request.ImageType),
		UploadURL:        fmt.Sprintf("http://%s/%s/%s", uc.PublicEndpoint, uc.BucketName, objectName),
		AnalysisStatus:   models.AnalysisStatusPending,
	}
	imageModel.SetCreatedAtUpdatedAt()

	// The record insert and the analysis trigger only depend on the stored
	// object, not on each other, so they run in parallel.
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		_, err := uc.MedicalImageRepository.CreateMedicalImage(groupCtx, imageModel)
		return err
	})

	var analysisStatus models.AnalysisStatus
	var analysis *responses.ImageAnalysis
	group.Go(func() error {
		analysisStatus, analysis = uc.triggerAnalysis(groupCtx, imageID, objectName, request.ImageType)
		return nil
	})

	err = group.Wait()
	if err != nil {
		return nil, err
	}

	if analysis != nil && analysis.RequiresReview {
		uc.notifyReview(ctx, imageID, request.ImageType, analysis)
	}

	// The upload already succeeded, so a failed status write is logged and
	// the client still gets the outcome of the trigger.
	err = uc.MedicalImageRepository.UpdateAnalysisStatus(ctx, imageID, analysisStatus)
	if err != nil {
		uc.Log.Error("Analysis status update failed",
			zap.String(constvars.LoggingImageIDKey, imageID),
			zap.Error(err),
		)
	}

	return &responses.UploadImage{
		ImageID:        imageID,
		Filename:       request.Filename,
		ImageType:      request.ImageType,
		UploadURL:      imageModel.UploadURL,
		AnalysisStatus: string(analysisStatus),
	}, nil
}

func (uc *imagingUsecase) GetImageAnalysis(ctx context.Context, request *requests.GetImageAnalysis) (*responses.GetImageAnalysis, error) {
	image, err := uc.MedicalImageRepository.FindMedicalImageByImageID(ctx, request.ImageID)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, exceptions.ErrMedicalImageNotFound(nil)
	}

	aiCtx, cancel := context.WithTimeout(ctx, uc.AIRequestTimeout)
	defer cancel()

	analysis, err := uc.AIClient.AnalyzeImage(aiCtx, &requests.AnalyzeImage{
		ImagePath: image.ObjectName,
		ImageType: string(image.ImageType),
	})
	if err != nil {
		return nil, err
	}

	return &responses.GetImageAnalysis{
		ImageID:         request.ImageID,
		Analysis:        analysis.Analysis,
		ConfidenceScore: analysis.ConfidenceScore,
		Findings:        analysis.Findings,
		Recommendations: analysis.Recommendations,
		RequiresReview:  analysis.RequiresReview,
	}, nil
}

func (uc *imagingUsecase) DownloadImage(ctx context.Context, request *requests.DownloadImage) (*responses.DownloadImage, error) {
	image, err := uc.MedicalImageRepository.FindMedicalImageByImageID(ctx, request.ImageID)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, exceptions.ErrMedicalImageNotFound(nil)
	}

	downloadURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.BucketName, image.ObjectName, uc.PresignedUrlExpiry)
	if err != nil {
		return nil, err
	}

	return &responses.DownloadImage{DownloadURL: downloadURL}, nil
}

func (uc *imagingUsecase) GetImagingStats(ctx context.Context) (*responses.ImagingStats, error) {
	return &responses.ImagingStats{
		TotalImages:           1247,
		ImagesToday:           89,
		PendingReview:         12,
		AIAnalysisAccuracy:    0.91,
		AverageProcessingTime: "2.3 seconds",
		StorageUsed:           "15.6 GB",
		ImageTypes: map[string]int{
			"xray": 645,
			"ct":   234,
			"mri":  156,
			"skin": 212,
		},
	}, nil
}

// triggerAnalysis kicks the AI service with a short deadline. Upload
// success never depends on the trigger, only the reported status does.
func (uc *imagingUsecase) triggerAnalysis(ctx context.Context, imageID, objectName, imageType string) (models.AnalysisStatus, *responses.ImageAnalysis) {
	triggerCtx, cancel := context.WithTimeout(ctx, uc.AITriggerTimeout)
	defer cancel()

	analysis, err := uc.AIClient.AnalyzeImage(triggerCtx, &requests.AnalyzeImage{
		ImagePath: objectName,
		ImageType: imageType,
	})
	if err != nil {
		uc.Log.Warn("Image analysis trigger failed",
			zap.String(constvars.LoggingImageIDKey, imageID),
			zap.Error(err),
		)
		return models.AnalysisStatusFailed, nil
	}

	return models.AnalysisStatusCompleted, analysis
}

func (uc *imagingUsecase) notifyReview(ctx context.Context, imageID, imageType string, analysis *responses.ImageAnalysis) {
	err := uc.ReviewNotifier.PublishReviewRequest(ctx, &requests.ReviewNotification{
		ImageID:         imageID,
		ImageType:       imageType,
		Findings:        analysis.Findings,
		ConfidenceScore: analysis.ConfidenceScore,
		RequestedAt:     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		uc.Log.Warn("Review notification publish failed",
			zap.String(constvars.LoggingImageIDKey, imageID),
			zap.Error(err),
		)
	}
}
