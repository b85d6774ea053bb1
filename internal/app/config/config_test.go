package config

import (
	"testing"
	"vitalsign-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("FHIR_BASE_URL", "")
		t.Setenv("BMI_REPORT_PAIRING", "")
		t.Setenv("BMI_REPORT_EXPORT_CRON", "")

		cfg := NewInternalConfig()

		assert.Equal(t, "https://twcore.hapi.fhir.tw/fhir/", cfg.FHIR.BaseUrl)
		assert.Equal(t, constvars.FhirTWCorePatientProfile, cfg.FHIR.PatientProfile)
		assert.Equal(t, "http://hospital.local/patient-id", cfg.FHIR.PatientIdentifierSystem)
		assert.Equal(t, constvars.PairingStrategyPosition, cfg.BMIReport.Pairing)
		assert.Empty(t, cfg.BMIReport.ExportCronSpec, "scheduled export is off unless configured")
		assert.Equal(t, 120, cfg.BMIReport.ExportLockTTLInSeconds)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("FHIR_BASE_URL", "http://localhost:8080/fhir/")
		t.Setenv("BMI_REPORT_PAGE_SIZE", "50")
		t.Setenv("BMI_REPORT_PAIRING", "subject")

		cfg := NewInternalConfig()

		assert.Equal(t, "http://localhost:8080/fhir/", cfg.FHIR.BaseUrl)
		assert.Equal(t, 50, cfg.BMIReport.PageSize)
		assert.Equal(t, constvars.PairingStrategySubject, cfg.BMIReport.Pairing)
	})

	t.Run("Unparsable Integer Falls Back", func(t *testing.T) {
		t.Setenv("BMI_REPORT_PAGE_SIZE", "ten")

		assert.Equal(t, 10, NewInternalConfig().BMIReport.PageSize)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("REDIS_HOST", "")
	t.Setenv("MINIO_HOST", "")
	t.Setenv("RABBITMQ_HOST", "")

	cfg := NewDriverConfig()

	assert.Empty(t, cfg.Redis.Host, "redis is optional")
	assert.Empty(t, cfg.Minio.Host, "minio is optional")
	assert.Empty(t, cfg.RabbitMQ.Host, "rabbitmq is optional")
}
