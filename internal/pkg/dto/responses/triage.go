package responses

type TriageAnalysis struct {
	ConsultationID  string            `json:"consultation_id"`
	TriageLevel     string            `json:"triage_level"`
	TriageScore     float64           `json:"triage_score"`
	Assessment      SymptomAssessment `json:"assessment"`
	Recommendations []string          `json:"recommendations"`
	Confidence      float64           `json:"confidence"`
}

type TriageQueue struct {
	Critical []TriageQueueEntry `json:"critical"`
	Urgent   []TriageQueueEntry `json:"urgent"`
	Routine  []TriageQueueEntry `json:"routine"`
}

type TriageQueueEntry struct {
	ConsultationID int    `json:"consultation_id"`
	PatientName    string `json:"patient_name"`
	ChiefComplaint string `json:"chief_complaint"`
	WaitTime       string `json:"wait_time"`
}

type TriageStats struct {
	TotalPatients   int             `json:"total_patients"`
	CurrentQueue    int             `json:"current_queue"`
	AverageWaitTime TriageWaitTimes `json:"average_wait_time"`
	ProcessedToday  int             `json:"processed_today"`
	AIAccuracy      float64         `json:"ai_accuracy"`
}

type TriageWaitTimes struct {
	Critical string `json:"critical"`
	Urgent   string `json:"urgent"`
	Routine  string `json:"routine"`
}
