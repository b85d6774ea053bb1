package bmi_reports

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/requests"
	"vitalsign-service/internal/pkg/dto/responses"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bmiReportUsecase struct {
	ObservationFhirClient contracts.ObservationFhirClient
	Joiner                *Joiner
	Storage               contracts.Storage
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

// NewBMIReportUsecase wires the report flow. cache and storage may be nil;
// without storage ExportBMIReport reports the feature as unavailable.
func NewBMIReportUsecase(
	observationFhirClient contracts.ObservationFhirClient,
	patientFhirClient contracts.PatientFhirClient,
	cache contracts.SubjectCache,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BMIReportUsecase {
	return &bmiReportUsecase{
		ObservationFhirClient: observationFhirClient,
		Joiner:                NewJoiner(patientFhirClient, cache, logger),
		Storage:               storage,
		InternalConfig:        internalConfig,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *bmiReportUsecase) GetBMIReport(ctx context.Context, request *requests.BMIReport) (*responses.BMIReport, error) {
	requestID := utils.RequestIDFromContext(ctx)
	start := uc.now()

	pageSize := request.Count
	if pageSize <= 0 {
		pageSize = uc.InternalConfig.BMIReport.PageSize
	}

	heights, err := uc.ObservationFhirClient.FindObservationsByCode(ctx, constvars.LoincBodyHeight, pageSize)
	if err != nil {
		return nil, err
	}
	weights, err := uc.ObservationFhirClient.FindObservationsByCode(ctx, constvars.LoincBodyWeight, pageSize)
	if err != nil {
		return nil, err
	}

	pairing := uc.InternalConfig.BMIReport.Pairing
	pairs := uc.Joiner.Join(ctx, heights, weights, pairing)
	rows := BuildReportRows(pairs)

	uc.Log.Info("bmiReportUsecase.GetBMIReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("heights", len(heights)),
		zap.Int("weights", len(weights)),
		zap.Int(constvars.LoggingCountKey, len(rows)),
		zap.String("pairing", pairing),
		zap.Duration(constvars.LoggingDurationKey, uc.now().Sub(start)),
	)

	return &responses.BMIReport{
		Rows:        rows,
		GeneratedAt: uc.now().UTC(),
		Pairing:     pairing,
	}, nil
}

func (uc *bmiReportUsecase) WriteBMIReportSpreadsheet(ctx context.Context, request *requests.BMIReport, w io.Writer) (int, error) {
	report, err := uc.GetBMIReport(ctx, request)
	if err != nil {
		return 0, err
	}

	if err := writeReportSpreadsheet(report.Rows, w); err != nil {
		uc.Log.Error("bmiReportUsecase.WriteBMIReportSpreadsheet error building workbook",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return 0, exceptions.ErrBuildSpreadsheet(err, constvars.BMIReportSheetName)
	}
	return len(report.Rows), nil
}

func (uc *bmiReportUsecase) ExportBMIReport(ctx context.Context, request *requests.BMIReport) (*responses.BMIReportExport, error) {
	requestID := utils.RequestIDFromContext(ctx)
	if uc.Storage == nil {
		return nil, exceptions.ErrMinioNotConfigured(errors.New("object storage is not configured"))
	}

	var buffer bytes.Buffer
	rowCount, err := uc.WriteBMIReportSpreadsheet(ctx, request, &buffer)
	if err != nil {
		return nil, err
	}

	bucket := uc.InternalConfig.BMIReport.ExportBucket
	now := uc.now()
	objectName, err := uc.Storage.UploadObject(ctx, &buffer, int64(buffer.Len()), bucket, utils.GenerateReportFileName(now), constvars.MIMEApplicationXLSX)
	if err != nil {
		uc.Log.Error("bmiReportUsecase.ExportBMIReport error uploading report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.BMIReport.ExportURLExpiryInMinutes) * time.Minute
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucket, objectName, expiry)
	if err != nil {
		uc.Log.Error("bmiReportUsecase.ExportBMIReport error presigning report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventBMIReportExported, requestID,
		zap.String("object_name", objectName),
		zap.Int(constvars.LoggingCountKey, rowCount),
	)

	return &responses.BMIReportExport{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  now.Add(expiry).UTC(),
		RowCount:   rowCount,
	}, nil
}
