package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccessMessage = "user registered successfully"
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"
	GetMeSuccessMessage    = "get current user successfully"

	// Patient-related messages
	CreatePatientProfileSuccessMessage = "patient profile created successfully"
	GetPatientProfileSuccessMessage    = "get patient profile successfully"

	// Consultation-related messages
	CreateConsultationSuccessMessage = "consultation created successfully"
	GetConsultationsSuccessMessage   = "get consultations successfully"
	GetConsultationSuccessMessage    = "get consultation successfully"

	// Triage-related messages
	AnalyzeTriageSuccessMessage  = "triage analysis completed successfully"
	GetTriageQueueSuccessMessage = "get triage queue successfully"
	GetTriageStatsSuccessMessage = "get triage statistics successfully"

	// Clinical messages
	GenerateDiagnosisSuccessMessage = "differential diagnosis generated successfully"

	// AI messages
	AnalyzeSymptomsSuccessMessage  = "symptom analysis completed successfully"
	AnalyzeImageSuccessMessage     = "image analysis completed successfully"
	GetModelStatusSuccessMessage   = "get model status successfully"

	// Imaging messages
	UploadImageSuccessMessage      = "image uploaded successfully"
	GetImageAnalysisSuccessMessage = "get image analysis successfully"
	GetImageDownloadSuccessMessage = "get image download url successfully"
	GetImagingStatsSuccessMessage  = "get imaging statistics successfully"

	// Platform messages
	GetServicesStatusSuccessMessage = "get services status successfully"
)
