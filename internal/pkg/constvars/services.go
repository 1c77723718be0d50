package constvars

// Banner messages served by each service's root endpoint.
const (
	BannerGateway  = "MedFlow AI API Gateway"
	BannerTriage   = "MedFlow Triage Service"
	BannerImaging  = "MedFlow Imaging Service"
	BannerClinical = "MedFlow Clinical Service"
	BannerAI       = "MedFlow AI Service"
)

// ServiceBanners maps a service name to its root endpoint banner.
var ServiceBanners = map[string]string{
	ServiceNameGateway:  BannerGateway,
	ServiceNameTriage:   BannerTriage,
	ServiceNameImaging:  BannerImaging,
	ServiceNameClinical: BannerClinical,
	ServiceNameAI:       BannerAI,
}
