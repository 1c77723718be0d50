package imaging

import (
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"medflow-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ImagingController struct {
	Log            *zap.Logger
	ImagingUsecase contracts.ImagingUsecase
	MaxUploadSize  int64
}

func NewImagingController(logger *zap.Logger, imagingUsecase contracts.ImagingUsecase, internalConfig *config.InternalConfig) *ImagingController {
	return &ImagingController{
		Log:            logger,
		ImagingUsecase: imagingUsecase,
		MaxUploadSize:  internalConfig.Minio.MaxUploadSizeInMB << 20,
	}
}

func (ctrl *ImagingController) UploadImage(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(ctrl.MaxUploadSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.FormFieldImage)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	defer file.Close()

	request := &requests.UploadImage{
		ImageType:      r.FormValue(constvars.FormFieldImageType),
		ConsultationID: r.FormValue(constvars.FormFieldConsultationID),
		UserID:         r.FormValue(constvars.FormFieldUserID),
		Filename:       fileHeader.Filename,
		ContentType:    fileHeader.Header.Get(constvars.HeaderContentType),
		Size:           fileHeader.Size,
		File:           file,
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.ImagingUsecase.UploadImage(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "medical_image_uploaded", utils.GetRequestID(r.Context()),
		zap.String(constvars.LoggingImageIDKey, response.ImageID),
		zap.String("image_type", response.ImageType),
	)

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadImageSuccessMessage, response)
}

func (ctrl *ImagingController) GetImageAnalysis(w http.ResponseWriter, r *http.Request) {
	request := &requests.GetImageAnalysis{
		ImageID: chi.URLParam(r, constvars.URLParamImageID),
	}

	response, err := ctrl.ImagingUsecase.GetImageAnalysis(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetImageAnalysisSuccessMessage, response)
}

func (ctrl *ImagingController) DownloadImage(w http.ResponseWriter, r *http.Request) {
	request := &requests.DownloadImage{
		ImageID: chi.URLParam(r, constvars.URLParamImageID),
	}

	response, err := ctrl.ImagingUsecase.DownloadImage(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetImageDownloadSuccessMessage, response)
}

func (ctrl *ImagingController) GetImagingStats(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.ImagingUsecase.GetImagingStats(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetImagingStatsSuccessMessage, response)
}
