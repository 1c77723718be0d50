package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDFLW_SVC_"
)

const (
	TokenTypeBearer = "bearer"
)

const (
	MongoCollectionUsers            = "users"
	MongoCollectionPatientProfiles  = "patient_profiles"
	MongoCollectionProviderProfiles = "provider_profiles"
	MongoCollectionConsultations    = "consultations"
	MongoCollectionMedicalImages    = "medical_images"
)

const (
	MinioBucketMedicalImages = "medical-images"
)

const (
	RabbitMQReviewQueue = "medflow.review"
)

// Downstream service names as they appear in health reports and
// client-facing degradation messages.
const (
	ServiceNameGateway  = "api-gateway"
	ServiceNameAI       = "ai-service"
	ServiceNameTriage   = "triage-service"
	ServiceNameClinical = "clinical-service"
	ServiceNameImaging  = "imaging-service"
)

const (
	ServiceStatusHealthy     = "healthy"
	ServiceStatusUnhealthy   = "unhealthy"
	ServiceStatusUnreachable = "unreachable"
)
