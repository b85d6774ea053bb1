package vital_signs

import (
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/bmi"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/fhir_dto"
	"vitalsign-service/internal/pkg/utils"
)

// BundleAssembler links a Patient and its Observation inside one transaction
// bundle through fresh urn:uuid: full URLs.
type BundleAssembler struct {
	builder *ResourceBuilder
	newID   func() string
}

func NewBundleAssembler(builder *ResourceBuilder) *BundleAssembler {
	return &BundleAssembler{
		builder: builder,
		newID:   utils.GenerateTemporaryID,
	}
}

// Assemble returns a bundle of exactly two POST entries, Patient first, with
// the Observation subject pointing at the Patient entry's full URL.
func (a *BundleAssembler) Assemble(vitals models.VitalSigns) (*fhir_dto.TransactionBundle, bmi.Optional) {
	patientFullURL := a.newID()
	observationFullURL := a.newID()

	patient := a.builder.BuildPatient(vitals.Subject)
	observation, bmiValue := a.builder.BuildObservation(vitals.Height, vitals.Weight, patientFullURL)

	bundle := &fhir_dto.TransactionBundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeTransaction,
		Entry: []fhir_dto.TransactionEntry{
			{
				FullURL:  patientFullURL,
				Resource: patient,
				Request: fhir_dto.BundleRequest{
					Method: constvars.MethodPost,
					URL:    constvars.ResourcePatient,
				},
			},
			{
				FullURL:  observationFullURL,
				Resource: observation,
				Request: fhir_dto.BundleRequest{
					Method: constvars.MethodPost,
					URL:    constvars.ResourceObservation,
				},
			},
		},
	}
	return bundle, bmiValue
}
