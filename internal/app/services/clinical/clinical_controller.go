package clinical

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

type ClinicalController struct {
	Log             *zap.Logger
	ClinicalUsecase contracts.ClinicalUsecase
}

func NewClinicalController(logger *zap.Logger, clinicalUsecase contracts.ClinicalUsecase) *ClinicalController {
	return &ClinicalController{
		Log:             logger,
		ClinicalUsecase: clinicalUsecase,
	}
}

func (ctrl *ClinicalController) GenerateDiagnosis(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.GenerateDiagnosis)
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

	response, err := ctrl.ClinicalUsecase.GenerateDiagnosis(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateDiagnosisSuccessMessage, response)
}
