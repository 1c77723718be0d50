package gateway

import (
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"medflow-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type ImageForwardController struct {
	Log                 *zap.Logger
	ImageForwardUsecase contracts.ImageForwardUsecase
	MaxUploadSize       int64
}

func NewImageForwardController(logger *zap.Logger, imageForwardUsecase contracts.ImageForwardUsecase, internalConfig *config.InternalConfig) *ImageForwardController {
	return &ImageForwardController{
		Log:                 logger,
		ImageForwardUsecase: imageForwardUsecase,
		MaxUploadSize:       internalConfig.Minio.MaxUploadSizeInMB << 20,
	}
}

func (ctrl *ImageForwardController) UploadImage(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

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

	request := &requests.ForwardUpload{
		ImageType:      r.FormValue(constvars.FormFieldImageType),
		ConsultationID: r.FormValue(constvars.FormFieldConsultationID),
		Filename:       fileHeader.Filename,
		ContentType:    fileHeader.Header.Get(constvars.HeaderContentType),
		Size:           fileHeader.Size,
		File:           file,
		SessionData:    sessionData,
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.ImageForwardUsecase.ForwardUpload(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "image_upload_forwarded", utils.GetRequestID(r.Context()),
		zap.String(constvars.LoggingImageIDKey, response.ImageID),
	)

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadImageSuccessMessage, response)
}
