package requests

type AnalyzeSymptoms struct {
	Symptoms       []string               `json:"symptoms" validate:"required"`
	MedicalHistory []string               `json:"medical_history,omitempty"`
	VitalSigns     map[string]interface{} `json:"vital_signs,omitempty"`
}

type AnalyzeImage struct {
	ImagePath string `json:"image_path" validate:"required"`
	ImageType string `json:"image_type" validate:"required,image_type"`
}

type DifferentialDiagnosis struct {
	Symptoms       []string               `json:"symptoms" validate:"required"`
	PatientHistory map[string]interface{} `json:"patient_history,omitempty"`
	ExamFindings   []string               `json:"exam_findings,omitempty"`
}
