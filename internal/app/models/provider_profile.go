package models

type ProviderProfile struct {
	ID                  string `bson:"_id,omitempty"`
	UserID              string `bson:"userId"`
	LicenseNumber       string `bson:"licenseNumber,omitempty"`
	Specialty           string `bson:"specialty,omitempty"`
	HospitalAffiliation string `bson:"hospitalAffiliation,omitempty"`
	YearsExperience     int    `bson:"yearsExperience,omitempty"`
	TimeModel           `bson:",inline"`
}
