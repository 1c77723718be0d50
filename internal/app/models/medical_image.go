package models

type ImageType string

const (
	ImageTypeXray   ImageType = "xray"
	ImageTypeSkin   ImageType = "skin"
	ImageTypeFundus ImageType = "fundus"
	ImageTypeCT     ImageType = "ct"
	ImageTypeMRI    ImageType = "mri"
)

type AnalysisStatus string

const (
	AnalysisStatusPending   AnalysisStatus = "pending"
	AnalysisStatusCompleted AnalysisStatus = "completed"
	AnalysisStatusFailed    AnalysisStatus = "failed"
)

type MedicalImage struct {
	ID               string         `bson:"_id,omitempty"`
	ImageID          string         `bson:"imageId"`
	UserID           string         `bson:"userId,omitempty"`
	ConsultationID   string         `bson:"consultationId,omitempty"`
	OriginalFilename string         `bson:"originalFilename"`
	ObjectName       string         `bson:"objectName"`
	ContentType      string         `bson:"contentType"`
	ImageType        ImageType      `bson:"imageType"`
	UploadURL        string         `bson:"uploadUrl"`
	AnalysisStatus   AnalysisStatus `bson:"analysisStatus"`
	TimeModel        `bson:",inline"`
}
