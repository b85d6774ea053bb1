package contracts

import (
	"context"
	"vitalsign-service/internal/pkg/dto/requests"
	"vitalsign-service/internal/pkg/dto/responses"
)

type VitalSignUsecase interface {
	SubmitVitalSigns(ctx context.Context, request *requests.VitalSigns) (*responses.SubmissionResult, error)
	PreviewBundle(ctx context.Context, request *requests.VitalSigns) (*responses.BundlePreview, error)
}
