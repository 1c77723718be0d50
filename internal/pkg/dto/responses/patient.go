package responses

type PatientProfile struct {
	ProfileID        string `json:"profile_id"`
	UserID           string `json:"user_id"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	MedicalHistory   string `json:"medical_history,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	Medications      string `json:"medications,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
}
