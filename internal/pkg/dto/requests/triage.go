package requests

type AnalyzeTriage struct {
	ConsultationID string                 `json:"consultation_id" validate:"required"`
	Symptoms       []string               `json:"symptoms" validate:"required"`
	MedicalHistory []string               `json:"medical_history,omitempty"`
	VitalSigns     map[string]interface{} `json:"vital_signs,omitempty"`
}
