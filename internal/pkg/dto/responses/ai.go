package responses

type SymptomAnalysis struct {
	TriageLevel     string            `json:"triage_level"`
	TriageScore     float64           `json:"triage_score"`
	Assessment      SymptomAssessment `json:"assessment"`
	Recommendations []string          `json:"recommendations"`
	Confidence      float64           `json:"confidence"`
}

type SymptomAssessment struct {
	PrimaryConcern    string   `json:"primary_concern"`
	RiskFactors       []string `json:"risk_factors"`
	ClinicalReasoning string   `json:"clinical_reasoning"`
	RedFlags          []string `json:"red_flags"`
}

type ImageAnalysis struct {
	Analysis        ImageAnalysisDetail `json:"analysis"`
	ConfidenceScore float64             `json:"confidence_score"`
	Findings        []string            `json:"findings"`
	Recommendations []string            `json:"recommendations"`
	RequiresReview  bool                `json:"requires_review"`
}

type ImageAnalysisDetail struct {
	ImageType            string   `json:"image_type"`
	QualityAssessment    string   `json:"quality_assessment"`
	AnatomicalStructures []string `json:"anatomical_structures"`
	PathologicalFindings []string `json:"pathological_findings"`
	TechnicalFactors     string   `json:"technical_factors"`
}

type DifferentialDiagnosis struct {
	Diagnoses  []Diagnosis `json:"diagnoses"`
	Reasoning  string      `json:"reasoning"`
	Confidence float64     `json:"confidence"`
}

type Diagnosis struct {
	Diagnosis   string  `json:"diagnosis"`
	Probability float64 `json:"probability"`
	Urgency     string  `json:"urgency"`
}

type ModelStatus struct {
	Status       string   `json:"status"`
	ModelType    string   `json:"model_type"`
	Capabilities []string `json:"capabilities"`
	LastUpdated  string   `json:"last_updated"`
}
