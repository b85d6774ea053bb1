package contracts

import (
	"context"
	"vitalsign-service/internal/app/models"
)

type SubmissionPublisher interface {
	PublishSubmission(ctx context.Context, event *models.SubmissionEvent) error
}
