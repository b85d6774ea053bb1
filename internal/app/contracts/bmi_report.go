package contracts

import (
	"context"
	"io"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/dto/requests"
	"vitalsign-service/internal/pkg/dto/responses"
)

type BMIReportUsecase interface {
	GetBMIReport(ctx context.Context, request *requests.BMIReport) (*responses.BMIReport, error)
	WriteBMIReportSpreadsheet(ctx context.Context, request *requests.BMIReport, w io.Writer) (int, error)
	ExportBMIReport(ctx context.Context, request *requests.BMIReport) (*responses.BMIReportExport, error)
}

// SubjectCache stores subject lookups between report runs.
type SubjectCache interface {
	Get(ctx context.Context, reference string) (*models.SubjectSummary, bool)
	Set(ctx context.Context, summary *models.SubjectSummary)
}
