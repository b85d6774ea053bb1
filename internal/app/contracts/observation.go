package contracts

import (
	"context"
	"vitalsign-service/internal/app/models"
)

type ObservationFhirClient interface {
	// FindObservationsByCode walks every search page for code, newest first.
	// A failing page ends the walk and the tuples gathered so far are
	// returned; only a cancelled context is reported as an error.
	FindObservationsByCode(ctx context.Context, code string, pageSize int) ([]models.ObservationTuple, error)
}
