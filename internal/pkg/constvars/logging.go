package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingOperationKey    = "operation"
	LoggingServiceKey      = "service"
	LoggingUserIDKey       = "user_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingConsultationKey = "consultation_id"
	LoggingImageIDKey      = "image_id"
	LoggingTriageLevelKey  = "triage_level"
	LoggingObjectNameKey   = "object_name"
	LoggingQueueKey        = "queue"
	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"
)
