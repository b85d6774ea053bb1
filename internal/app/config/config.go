package config

import (
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", ""),
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
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", ""),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvironmentDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Taipei"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		FHIR: AppFHIR{
			BaseUrl:                 utils.GetEnvString("FHIR_BASE_URL", constvars.FhirDefaultBaseURL),
			PatientProfile:          utils.GetEnvString("FHIR_PATIENT_PROFILE", constvars.FhirTWCorePatientProfile),
			ObservationProfile:      utils.GetEnvString("FHIR_OBSERVATION_PROFILE", constvars.FhirTWCoreVitalSignsProfile),
			PatientIdentifierSystem: utils.GetEnvString("FHIR_PATIENT_IDENTIFIER_SYSTEM", constvars.FhirPatientIdentifierSystem),
		},
		BMIReport: AppBMIReport{
			PageSize:                 utils.GetEnvInt("BMI_REPORT_PAGE_SIZE", 10),
			Pairing:                  utils.GetEnvString("BMI_REPORT_PAIRING", constvars.PairingStrategyPosition),
			PatientCacheTTLInSeconds: utils.GetEnvInt("BMI_REPORT_PATIENT_CACHE_TTL_IN_SECONDS", 300),
			ExportBucket:             utils.GetEnvString("BMI_REPORT_EXPORT_BUCKET", "bmi-reports"),
			ExportURLExpiryInMinutes: utils.GetEnvInt("BMI_REPORT_EXPORT_URL_EXPIRY_IN_MINUTES", 60),
			ExportCronSpec:           utils.GetEnvString("BMI_REPORT_EXPORT_CRON", ""),
			ExportLockTTLInSeconds:   utils.GetEnvInt("BMI_REPORT_EXPORT_LOCK_TTL_IN_SECONDS", 120),
		},
		RabbitMQ: AppRabbitMQ{
			SubmissionQueue: utils.GetEnvString("APP_RABBITMQ_SUBMISSION_QUEUE", "vital-signs-submitted"),
		},
		Seeder: AppSeeder{
			RequestsPerSecond: utils.GetEnvFloat("SEEDER_REQUESTS_PER_SECOND", 2),
			Burst:             utils.GetEnvInt("SEEDER_BURST", 1),
		},
	}
}
