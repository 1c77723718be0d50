package ai

import (
	"context"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"medflow-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AIController struct {
	Log       *zap.Logger
	AIUsecase contracts.AIUsecase
}

func NewAIController(logger *zap.Logger, aiUsecase contracts.AIUsecase) *AIController {
	return &AIController{
		Log:       logger,
		AIUsecase: aiUsecase,
	}
}

func (ctrl *AIController) AnalyzeSymptoms(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.AnalyzeSymptoms)
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

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AIUsecase.AnalyzeSymptoms(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyzeSymptomsSuccessMessage, response)
}

func (ctrl *AIController) GenerateDifferentialDiagnosis(w http.ResponseWriter, r *http.Request) {
	request := new(requests.DifferentialDiagnosis)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AIUsecase.GenerateDifferentialDiagnosis(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateDiagnosisSuccessMessage, response)
}

func (ctrl *AIController) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AnalyzeImage)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AIUsecase.AnalyzeImage(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyzeImageSuccessMessage, response)
}

func (ctrl *AIController) GetModelStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AIUsecase.GetModelStatus(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetModelStatusSuccessMessage, response)
}
