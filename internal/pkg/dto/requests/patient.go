package requests

type CreatePatientProfile struct {
	DateOfBirth      string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender           string `json:"gender,omitempty" validate:"omitempty,max=10"`
	Phone            string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	MedicalHistory   string `json:"medical_history,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	Medications      string `json:"medications,omitempty"`
	SessionData      string
}

type GetPatientProfile struct {
	SessionData string
}
