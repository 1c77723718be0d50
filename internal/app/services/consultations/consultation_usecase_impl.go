package consultations

import (
	"context"
	"encoding/json"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"strings"
	"time"

	"go.uber.org/zap"
)

type consultationUsecase struct {
	ConsultationRepository   contracts.ConsultationRepository
	PatientProfileRepository contracts.PatientProfileRepository
	SessionService           contracts.SessionService
	TriageClient             contracts.TriageClient
	Log                      *zap.Logger
	TriageRequestTimeout     time.Duration
}

func NewConsultationUsecase(
	consultationRepository contracts.ConsultationRepository,
	patientProfileRepository contracts.PatientProfileRepository,
	sessionService contracts.SessionService,
	triageClient contracts.TriageClient,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.ConsultationUsecase {
	return &consultationUsecase{
		ConsultationRepository:   consultationRepository,
		PatientProfileRepository: patientProfileRepository,
		SessionService:           sessionService,
		TriageClient:             triageClient,
		Log:                      logger,
		TriageRequestTimeout:     time.Duration(internalConfig.Services.TriageRequestTimeoutInSeconds) * time.Second,
	}
}

func (uc *consultationUsecase) CreateConsultation(ctx context.Context, request *requests.CreateConsultation) (*responses.Consultation, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != models.RolePatient {
		return nil, exceptions.ErrOnlyPatientsAllowed(nil)
	}

	profile, err := uc.PatientProfileRepository.FindPatientProfileByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrPatientProfileNotFound(nil)
	}

	consultationModel := &models.Consultation{
		PatientID:      profile.ID,
		ChiefComplaint: request.ChiefComplaint,
		Symptoms:       request.Symptoms,
		Status:         models.ConsultationStatusPending,
	}
	consultationModel.SetCreatedAtUpdatedAt()

	consultationID, err := uc.ConsultationRepository.CreateConsultation(ctx, consultationModel)
	if err != nil {
		return nil, err
	}
	consultationModel.ID = consultationID

	// The consultation is already persisted, so a failed triage call only
	// leaves it without an assessment instead of failing the request.
	uc.runTriageAnalysis(ctx, consultationModel, profile)

	return buildConsultationResponse(consultationModel), nil
}

func (uc *consultationUsecase) FindConsultations(ctx context.Context, request *requests.FindConsultations) ([]responses.Consultation, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	var consultationModels []models.Consultation
	if session.Role == models.RolePatient {
		profile, err := uc.PatientProfileRepository.FindPatientProfileByUserID(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, exceptions.ErrPatientProfileNotFound(nil)
		}
		consultationModels, err = uc.ConsultationRepository.FindConsultationsByPatientID(ctx, profile.ID)
		if err != nil {
			return nil, err
		}
	} else {
		consultationModels, err = uc.ConsultationRepository.FindAllConsultations(ctx)
		if err != nil {
			return nil, err
		}
	}

	consultations := make([]responses.Consultation, 0, len(consultationModels))
	for i := range consultationModels {
		consultations = append(consultations, *buildConsultationResponse(&consultationModels[i]))
	}
	return consultations, nil
}

func (uc *consultationUsecase) FindConsultationByID(ctx context.Context, request *requests.FindConsultationByID) (*responses.Consultation, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	consultationModel, err := uc.ConsultationRepository.FindConsultationByID(ctx, request.ConsultationID)
	if err != nil {
		return nil, err
	}
	if consultationModel == nil {
		return nil, exceptions.ErrConsultationNotFound(nil)
	}

	if session.Role == models.RolePatient {
		profile, err := uc.PatientProfileRepository.FindPatientProfileByUserID(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		if profile == nil || consultationModel.PatientID != profile.ID {
			return nil, exceptions.ErrConsultationNotOwned(nil)
		}
	}

	return buildConsultationResponse(consultationModel), nil
}

// runTriageAnalysis asks the triage service for an assessment and stores the
// result on the consultation. Every failure is logged and swallowed.
func (uc *consultationUsecase) runTriageAnalysis(ctx context.Context, consultationModel *models.Consultation, profile *models.PatientProfile) {
	triageCtx, cancel := context.WithTimeout(ctx, uc.TriageRequestTimeout)
	defer cancel()

	triageRequest := &requests.AnalyzeTriage{
		ConsultationID: consultationModel.ID,
		Symptoms:       splitCommaList(consultationModel.Symptoms),
		MedicalHistory: splitCommaList(profile.MedicalHistory),
	}
	if triageRequest.Symptoms == nil {
		triageRequest.Symptoms = []string{}
	}

	result, err := uc.TriageClient.AnalyzeTriage(triageCtx, triageRequest)
	if err != nil {
		uc.Log.Warn("Triage analysis failed",
			zap.String(constvars.LoggingConsultationKey, consultationModel.ID),
			zap.Error(err),
		)
		return
	}

	assessmentJSON, err := json.Marshal(result.Assessment)
	if err != nil {
		uc.Log.Warn("Triage assessment could not be serialized",
			zap.String(constvars.LoggingConsultationKey, consultationModel.ID),
			zap.Error(err),
		)
		return
	}

	consultationModel.TriageLevel = models.TriageLevel(result.TriageLevel)
	consultationModel.TriageScore = result.TriageScore
	consultationModel.AIAssessment = string(assessmentJSON)

	err = uc.ConsultationRepository.UpdateConsultationTriage(ctx, consultationModel.ID, consultationModel.TriageLevel, consultationModel.TriageScore, consultationModel.AIAssessment)
	if err != nil {
		uc.Log.Warn("Triage result could not be stored",
			zap.String(constvars.LoggingConsultationKey, consultationModel.ID),
			zap.Error(err),
		)
	}
}

func buildConsultationResponse(consultationModel *models.Consultation) *responses.Consultation {
	return &responses.Consultation{
		ConsultationID:        consultationModel.ID,
		PatientID:             consultationModel.PatientID,
		ProviderID:            consultationModel.ProviderID,
		ChiefComplaint:        consultationModel.ChiefComplaint,
		Symptoms:              consultationModel.Symptoms,
		TriageLevel:           string(consultationModel.TriageLevel),
		TriageScore:           consultationModel.TriageScore,
		AIAssessment:          consultationModel.AIAssessment,
		DifferentialDiagnosis: consultationModel.DifferentialDiagnosis,
		TreatmentPlan:         consultationModel.TreatmentPlan,
		Status:                string(consultationModel.Status),
		CreatedAt:             consultationModel.CreatedAt.Format(time.RFC3339),
	}
}

// splitCommaList turns the stored comma separated form back into a list,
// dropping empty entries left by stray separators.
func splitCommaList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
