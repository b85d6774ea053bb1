package config

type InternalConfig struct {
	App       App
	FHIR      AppFHIR
	BMIReport AppBMIReport
	RabbitMQ  AppRabbitMQ
	Seeder    AppSeeder
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

type AppFHIR struct {
	BaseUrl                 string
	PatientProfile          string
	ObservationProfile      string
	PatientIdentifierSystem string
}

type AppBMIReport struct {
	PageSize                 int
	Pairing                  string
	PatientCacheTTLInSeconds int
	ExportBucket             string
	ExportURLExpiryInMinutes int
	ExportCronSpec           string
	ExportLockTTLInSeconds   int
}

type AppRabbitMQ struct {
	SubmissionQueue string
}

type AppSeeder struct {
	RequestsPerSecond float64
	Burst             int
}
