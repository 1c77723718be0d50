package responses

type UploadImage struct {
	ImageID        string `json:"image_id"`
	Filename       string `json:"filename"`
	ImageType      string `json:"image_type"`
	UploadURL      string `json:"upload_url"`
	AnalysisStatus string `json:"analysis_status"`
}

type GetImageAnalysis struct {
	ImageID         string              `json:"image_id"`
	Analysis        ImageAnalysisDetail `json:"analysis"`
	ConfidenceScore float64             `json:"confidence_score"`
	Findings        []string            `json:"findings"`
	Recommendations []string            `json:"recommendations"`
	RequiresReview  bool                `json:"requires_review"`
}

type DownloadImage struct {
	DownloadURL string `json:"download_url"`
}

type ImagingStats struct {
	TotalImages           int            `json:"total_images"`
	ImagesToday           int            `json:"images_today"`
	PendingReview         int            `json:"pending_review"`
	AIAnalysisAccuracy    float64        `json:"ai_analysis_accuracy"`
	AverageProcessingTime string         `json:"average_processing_time"`
	StorageUsed           string         `json:"storage_used"`
	ImageTypes            map[string]int `json:"image_types"`
}
