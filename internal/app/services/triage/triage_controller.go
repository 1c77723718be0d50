package triage

import (
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"medflow-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TriageController struct {
	Log           *zap.Logger
	TriageUsecase contracts.TriageUsecase
}

func NewTriageController(logger *zap.Logger, triageUsecase contracts.TriageUsecase) *TriageController {
	return &TriageController{
		Log:           logger,
		TriageUsecase: triageUsecase,
	}
}

func (ctrl *TriageController) AnalyzeTriage(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.AnalyzeTriage)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// The usecase owns the AI deadline, so the request context is passed
	// through as-is.
	response, err := ctrl.TriageUsecase.AnalyzeConsultation(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "triage_analysis_completed", utils.GetRequestID(r.Context()),
		zap.String(constvars.LoggingConsultationKey, response.ConsultationID),
		zap.String(constvars.LoggingTriageLevelKey, response.TriageLevel),
	)

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyzeTriageSuccessMessage, response)
}

func (ctrl *TriageController) GetTriageQueue(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.TriageUsecase.GetTriageQueue(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTriageQueueSuccessMessage, response)
}

func (ctrl *TriageController) GetTriageStats(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.TriageUsecase.GetTriageStats(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTriageStatsSuccessMessage, response)
}
