package models

import "time"

type ConsultationStatus string

const (
	ConsultationStatusPending    ConsultationStatus = "pending"
	ConsultationStatusInProgress ConsultationStatus = "in_progress"
	ConsultationStatusCompleted  ConsultationStatus = "completed"
	ConsultationStatusCancelled  ConsultationStatus = "cancelled"
)

type Consultation struct {
	ID                    string             `bson:"_id,omitempty"`
	PatientID             string             `bson:"patientId"`
	ProviderID            string             `bson:"providerId,omitempty"`
	ChiefComplaint        string             `bson:"chiefComplaint"`
	Symptoms              string             `bson:"symptoms,omitempty"`
	TriageLevel           TriageLevel        `bson:"triageLevel,omitempty"`
	TriageScore           float64            `bson:"triageScore,omitempty"`
	AIAssessment          string             `bson:"aiAssessment,omitempty"`
	DifferentialDiagnosis string             `bson:"differentialDiagnosis,omitempty"`
	TreatmentPlan         string             `bson:"treatmentPlan,omitempty"`
	Status                ConsultationStatus `bson:"status"`
	ScheduledAt           *time.Time         `bson:"scheduledAt,omitempty"`
	CompletedAt           *time.Time         `bson:"completedAt,omitempty"`
	TimeModel             `bson:",inline"`
}
