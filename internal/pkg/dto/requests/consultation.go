package requests

type CreateConsultation struct {
	ChiefComplaint string `json:"chief_complaint" validate:"required"`
	Symptoms       string `json:"symptoms,omitempty"`
	SessionData    string
}

type FindConsultations struct {
	SessionData string
}

type FindConsultationByID struct {
	ConsultationID string
	SessionData    string
}
