package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"alphanum":         "must contain only alphanumeric characters",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"eqfield":          "must match %s",
	"password":         "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":          "must be a number",
	"len":              "must be %s characters long",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"url":              "must be a valid URL",
	"uuid":             "must be a valid UUID",
	"datetime":         "must be a valid date in YYYY-MM-DD format",
	"user_role":        "must be one of [patient physician nurse specialist admin]",
	"image_type":       "must be one of [xray skin fundus ct mri]",
	"required_if":      "is required when %s is %s",
	"required_with":    "is required when %s is present",
	"required_without": "is required when %s is not present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"len":              true,
	"eqfield":          true,
	"gt":               true,
	"gte":              true,
	"lt":               true,
	"lte":              true,
	"oneof":            true,
	"required_if":      true,
	"required_with":    true,
	"required_without": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already registered"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientProfileAlreadyExists          = "patient profile already exists"
	ErrClientProfileNotFound               = "patient profile not found"
	ErrClientConsultationNotFound          = "consultation not found"
	ErrClientImageNotFound                 = "image not found"
	ErrClientInvalidImageUpload            = "the image you uploaded does not meet the specified standards"
	ErrClientDownstreamTimeout             = "the %s is taking too long to respond"
	ErrClientDownstreamUnavailable         = "the %s is currently unavailable"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"

	// Usecase messages
	ErrDevPasswordsDoNotMatch   = "passwords do not match"
	ErrDevEmailAlreadyExists    = "email already exists"
	ErrDevUserNotExists         = "user not exists in our system"
	ErrDevProfileAlreadyExists  = "patient profile already exists for this user"
	ErrDevProfileNotExists      = "patient profile not exists for this user"
	ErrDevConsultationNotExists = "consultation not exists in our system"
	ErrDevConsultationNotOwned  = "consultation belongs to a different patient"
	ErrDevMedicalImageNotExists = "medical image not exists in our system"
	ErrDevOnlyPatientsAllowed   = "operation restricted to users with the patient role"
	ErrDevRoleTypeDoesntMatch   = "request done by user with different role"

	// Downstream service messages
	ErrDevDownstreamTimeout      = "call to %s exceeded its deadline"
	ErrDevDownstreamUnavailable  = "%s responded with a non-success status"
	ErrDevDownstreamDecodeFailed = "failed to decode %s response"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod  = "unexpected signing method"
	ErrDevAuthTokenInvalid   = "invalid or expired token"
	ErrDevAuthTokenMissing   = "token missing"
	ErrDevAuthInvalidSession = "invalid session"
	ErrDevAuthGenerateToken  = "failed to generate token"
	ErrDevSessionDataMissing = "session data not found in request context"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Minio messages
	ErrDevMinioFailedToCreateObject    = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"
	ErrDevRabbitMQDeclareQueue   = "failed to declare queue %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
