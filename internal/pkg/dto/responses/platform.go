package responses

// ServiceBanner and HealthCheck are written without the ResponseDTO envelope
// so that health probes can decode them directly.
type ServiceBanner struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type ServiceStatus struct {
	Status   string       `json:"status"`
	Response *HealthCheck `json:"response,omitempty"`
	Error    string       `json:"error,omitempty"`
}
