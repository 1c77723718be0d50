package responses

type Consultation struct {
	ConsultationID        string  `json:"consultation_id"`
	PatientID             string  `json:"patient_id"`
	ProviderID            string  `json:"provider_id,omitempty"`
	ChiefComplaint        string  `json:"chief_complaint"`
	Symptoms              string  `json:"symptoms,omitempty"`
	TriageLevel           string  `json:"triage_level,omitempty"`
	TriageScore           float64 `json:"triage_score,omitempty"`
	AIAssessment          string  `json:"ai_assessment,omitempty"`
	DifferentialDiagnosis string  `json:"differential_diagnosis,omitempty"`
	TreatmentPlan         string  `json:"treatment_plan,omitempty"`
	Status                string  `json:"status"`
	CreatedAt             string  `json:"created_at"`
}
