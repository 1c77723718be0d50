package config

import (
	"medflow-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medflow"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_ACCESS_KEY", "minioadmin"),
			Password: utils.GetEnvString("MINIO_SECRET_KEY", "minioadmin123"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Version:                    utils.GetEnvString("APP_VERSION", "1.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			AuthMaxAttempts:            utils.GetEnvInt("AUTH_MAX_ATTEMPTS", 10),
			AuthAttemptWindowInSeconds: utils.GetEnvInt("AUTH_ATTEMPT_WINDOW_IN_SECONDS", 60),
			AuthBlockTimeInMinutes:     utils.GetEnvInt("AUTH_BLOCK_TIME_IN_MINUTES", 15),
		},
		JWT: AppJWT{
			Secret:                      utils.GetEnvString("JWT_SECRET", "anyjwt"),
			SessionExpiredTimeInMinutes: utils.GetEnvInt("JWT_SESSION_EXPIRED_TIME_IN_MINUTES", 30),
		},
		Services: AppServices{
			GatewayPort:  utils.GetEnvString("GATEWAY_SERVICE_PORT", ":8080"),
			TriagePort:   utils.GetEnvString("TRIAGE_SERVICE_PORT", ":8081"),
			ImagingPort:  utils.GetEnvString("IMAGING_SERVICE_PORT", ":8082"),
			ClinicalPort: utils.GetEnvString("CLINICAL_SERVICE_PORT", ":8083"),
			AIPort:       utils.GetEnvString("AI_SERVICE_PORT", ":8084"),

			TriageBaseUrl:   utils.GetEnvString("TRIAGE_SERVICE_URL", "http://localhost:8081"),
			ImagingBaseUrl:  utils.GetEnvString("IMAGING_SERVICE_URL", "http://localhost:8082"),
			ClinicalBaseUrl: utils.GetEnvString("CLINICAL_SERVICE_URL", "http://localhost:8083"),
			AIBaseUrl:       utils.GetEnvString("AI_SERVICE_URL", "http://localhost:8084"),

			AIRequestTimeoutInSeconds:     utils.GetEnvInt("AI_REQUEST_TIMEOUT_IN_SECONDS", 30),
			AITriggerTimeoutInSeconds:     utils.GetEnvInt("AI_TRIGGER_TIMEOUT_IN_SECONDS", 5),
			TriageRequestTimeoutInSeconds: utils.GetEnvInt("TRIAGE_REQUEST_TIMEOUT_IN_SECONDS", 5),
			UploadForwardTimeoutInSeconds: utils.GetEnvInt("UPLOAD_FORWARD_TIMEOUT_IN_SECONDS", 30),
			HealthProbeTimeoutInSeconds:   utils.GetEnvInt("HEALTH_PROBE_TIMEOUT_IN_SECONDS", 5),
		},
		Minio: AppMinio{
			BucketName:                    utils.GetEnvString("MINIO_BUCKET_NAME", "medical-images"),
			MaxUploadSizeInMB:             utils.GetEnvInt64("MINIO_MAX_UPLOAD_SIZE_IN_MB", 10),
			PreSignedUrlExpiryTimeInHours: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_TIME_IN_HOURS", 1),
			PublicEndpoint:                utils.GetEnvString("MINIO_PUBLIC_ENDPOINT", "localhost:9000"),
		},
		RabbitMQ: AppRabbitMQ{
			ReviewQueue: utils.GetEnvString("RABBITMQ_REVIEW_QUEUE", "medflow.review"),
		},
	}
}
