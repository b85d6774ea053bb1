package contracts

import (
	"context"
	"vitalsign-service/internal/pkg/fhir_dto"
)

type PatientFhirClient interface {
	FindPatientByReference(ctx context.Context, reference string) (*fhir_dto.Patient, error)
}
