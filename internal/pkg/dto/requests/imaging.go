package requests

import "io"

type UploadImage struct {
	ImageType      string `validate:"required,image_type"`
	ConsultationID string
	UserID         string `validate:"required"`
	Filename       string `validate:"required"`
	ContentType    string
	Size           int64
	File           io.Reader
}

// ForwardUpload is the gateway-side upload request. The uploader is
// attributed from the session, never from a form field.
type ForwardUpload struct {
	ImageType      string `validate:"required,image_type"`
	ConsultationID string
	Filename       string `validate:"required"`
	ContentType    string
	Size           int64
	File           io.Reader
	SessionData    string
}

type GetImageAnalysis struct {
	ImageID string
}

type DownloadImage struct {
	ImageID string
}

// ReviewNotification is the payload published to the radiologist review
// queue when an automated analysis flags an image for human review.
type ReviewNotification struct {
	ImageID         string   `json:"image_id"`
	ImageType       string   `json:"image_type"`
	Findings        []string `json:"findings"`
	ConfidenceScore float64  `json:"confidence_score"`
	RequestedAt     string   `json:"requested_at"`
}
