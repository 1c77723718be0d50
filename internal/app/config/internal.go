package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Services AppServices
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                        string
	Version                    string
	Timezone                   string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	AuthMaxAttempts            int
	AuthAttemptWindowInSeconds int
	AuthBlockTimeInMinutes     int
}

type AppJWT struct {
	Secret                      string
	SessionExpiredTimeInMinutes int
}

// AppServices holds the listen ports of each service binary plus the base
// URLs and timeouts used when one service calls another.
type AppServices struct {
	GatewayPort  string
	TriagePort   string
	ImagingPort  string
	ClinicalPort string
	AIPort       string

	TriageBaseUrl   string
	ImagingBaseUrl  string
	ClinicalBaseUrl string
	AIBaseUrl       string

	AIRequestTimeoutInSeconds     int
	AITriggerTimeoutInSeconds     int
	TriageRequestTimeoutInSeconds int
	UploadForwardTimeoutInSeconds int
	HealthProbeTimeoutInSeconds   int
}

type AppMinio struct {
	BucketName                    string
	MaxUploadSizeInMB             int64
	PreSignedUrlExpiryTimeInHours int
	// PublicEndpoint is the host:port clients use to reach stored objects,
	// which may differ from the internal MinIO address.
	PublicEndpoint string
}

type AppRabbitMQ struct {
	ReviewQueue string
}
