package constvars

const (
	URLParamConsultationID = "consultation_id"
	URLParamImageID        = "image_id"
	URLParamPatientID      = "patient_id"
)

const (
	FormFieldImage          = "image"
	FormFieldImageType      = "image_type"
	FormFieldConsultationID = "consultation_id"
	FormFieldUserID         = "user_id"
)
