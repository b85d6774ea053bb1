package vital_signs

import (
	"testing"
	"time"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		FHIR: config.AppFHIR{
			BaseUrl:                 "https://twcore.hapi.fhir.tw/fhir/",
			PatientProfile:          constvars.FhirTWCorePatientProfile,
			ObservationProfile:      constvars.FhirTWCoreVitalSignsProfile,
			PatientIdentifierSystem: constvars.FhirPatientIdentifierSystem,
		},
	}
}

func fixedBuilder() *ResourceBuilder {
	builder := NewResourceBuilder(testInternalConfig())
	builder.now = func() time.Time { return time.Date(2024, time.June, 1, 8, 30, 0, 0, time.FixedZone("CST", 8*3600)) }
	return builder
}

func TestBuildPatient(t *testing.T) {
	patient := fixedBuilder().BuildPatient(models.Subject{Given: "Mei", Family: "Chen", Gender: "female", BirthDate: "1990-05-01"})

	assert.Equal(t, "Patient", patient.ResourceType)
	require.NotNil(t, patient.Meta)
	assert.Equal(t, []string{constvars.FhirTWCorePatientProfile}, patient.Meta.Profile)
	require.Len(t, patient.Identifier, 1)
	assert.Equal(t, "http://hospital.local/patient-id", patient.Identifier[0].System)
	assert.Equal(t, "Chen-Mei-1990-05-01", patient.Identifier[0].Value)
	assert.Equal(t, "official", patient.Name[0].Use)
	assert.Equal(t, []string{"Mei"}, patient.Name[0].Given)
	assert.Equal(t, "female", patient.Gender)
	assert.Equal(t, `<div xmlns="http://www.w3.org/1999/xhtml">Patient: Chen Mei, Gender: female, Birth: 1990-05-01</div>`, patient.Text.Div)
}

func TestBuildObservation(t *testing.T) {
	t.Run("Metric Units With BMI", func(t *testing.T) {
		observation, bmiValue := fixedBuilder().BuildObservation(
			models.Measurement{Raw: "170", Unit: "cm"},
			models.Measurement{Raw: "70", Unit: "kg"},
			"urn:uuid:patient",
		)

		require.True(t, bmiValue.Valid)
		assert.InDelta(t, 24.2214532, bmiValue.Value, 1e-6)
		assert.Equal(t, "final", observation.Status)
		assert.Equal(t, "urn:uuid:patient", observation.Subject.Reference)
		assert.Equal(t, "2024-06-01T00:30:00Z", observation.EffectiveDateTime)
		assert.True(t, observation.Code.HasCode(constvars.LoincSystem, "85353-1"))
		assert.True(t, observation.Category[0].HasCode(constvars.FhirObservationCategorySys, "vital-signs"))

		require.Len(t, observation.Component, 3)
		height := observation.FindComponent(constvars.LoincSystem, constvars.LoincBodyHeight)
		require.NotNil(t, height)
		assert.Equal(t, 170.0, *height.ValueQuantity.Value, "height keeps the entered value")
		assert.Equal(t, "cm", height.ValueQuantity.Unit)

		bmiComponent := observation.FindComponent(constvars.LoincSystem, constvars.LoincBMI)
		require.NotNil(t, bmiComponent)
		assert.Equal(t, "kg/m2", bmiComponent.ValueQuantity.Unit)
		assert.Equal(t, bmiValue.Value, *bmiComponent.ValueQuantity.Value, "stored bmi is not rounded")

		assert.Equal(t, `<div xmlns="http://www.w3.org/1999/xhtml">Observation: Height=170cm, Weight=70kg, BMI=24.22</div>`, observation.Text.Div)
	})

	t.Run("Imperial Units", func(t *testing.T) {
		observation, bmiValue := fixedBuilder().BuildObservation(
			models.Measurement{Raw: "67", Unit: "inch"},
			models.Measurement{Raw: "150", Unit: "pound"},
			"urn:uuid:patient",
		)

		require.True(t, bmiValue.Valid)
		assert.Contains(t, observation.Text.Div, "Height=67in, Weight=150lb, BMI=23.49")
		weight := observation.FindComponent(constvars.LoincSystem, constvars.LoincBodyWeight)
		assert.Equal(t, "pound", weight.ValueQuantity.Unit)
	})

	t.Run("No BMI Component When Height Invalid", func(t *testing.T) {
		observation, bmiValue := fixedBuilder().BuildObservation(
			models.Measurement{Raw: "abc", Unit: "cm"},
			models.Measurement{Raw: "70", Unit: "kg"},
			"urn:uuid:patient",
		)

		assert.False(t, bmiValue.Valid)
		assert.Len(t, observation.Component, 2)
		assert.Nil(t, observation.FindComponent(constvars.LoincSystem, constvars.LoincBMI))
		assert.NotContains(t, observation.Text.Div, "BMI=")
		height := observation.FindComponent(constvars.LoincSystem, constvars.LoincBodyHeight)
		assert.Nil(t, height.ValueQuantity.Value)
	})

	t.Run("Zero Height", func(t *testing.T) {
		observation, bmiValue := fixedBuilder().BuildObservation(
			models.Measurement{Raw: "0", Unit: "cm"},
			models.Measurement{Raw: "70", Unit: "kg"},
			"urn:uuid:patient",
		)

		assert.False(t, bmiValue.Valid)
		assert.Len(t, observation.Component, 2)
	})

	t.Run("Narrative Is Escaped", func(t *testing.T) {
		patient := fixedBuilder().BuildPatient(models.Subject{Given: "<b>", Family: "O'Neil", Gender: "male", BirthDate: "1980-01-01"})

		assert.NotContains(t, patient.Text.Div, "<b>")
	})
}
