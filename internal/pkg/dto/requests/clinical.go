package requests

type GenerateDiagnosis struct {
	Symptoms       []string               `json:"symptoms" validate:"required"`
	PatientHistory map[string]interface{} `json:"patient_history,omitempty"`
	ExamFindings   []string               `json:"exam_findings,omitempty"`
}
