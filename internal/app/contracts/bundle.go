package contracts

import (
	"context"
	"vitalsign-service/internal/pkg/fhir_dto"
)

type BundleFhirClient interface {
	// PostTransactionBundle returns the raw server answer for any HTTP status.
	// An error means the request never produced a response.
	PostTransactionBundle(ctx context.Context, bundle *fhir_dto.TransactionBundle) (*fhir_dto.TransactionResponse, error)
}
