package models

type PatientProfile struct {
	ID               string `bson:"_id,omitempty"`
	UserID           string `bson:"userId"`
	DateOfBirth      string `bson:"dateOfBirth,omitempty"`
	Gender           string `bson:"gender,omitempty"`
	Phone            string `bson:"phone,omitempty"`
	Address          string `bson:"address,omitempty"`
	EmergencyContact string `bson:"emergencyContact,omitempty"`
	MedicalHistory   string `bson:"medicalHistory,omitempty"`
	Allergies        string `bson:"allergies,omitempty"`
	Medications      string `bson:"medications,omitempty"`
	TimeModel        `bson:",inline"`
}
