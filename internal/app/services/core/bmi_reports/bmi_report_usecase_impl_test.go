package bmi_reports

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/requests"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func testReportConfig(pairing string) *config.InternalConfig {
	return &config.InternalConfig{
		BMIReport: config.AppBMIReport{
			PageSize:                 10,
			Pairing:                  pairing,
			ExportBucket:             "bmi-reports",
			ExportURLExpiryInMinutes: 15,
		},
	}
}

func newTestUsecase(storage *fakeStorage, pairing string) *bmiReportUsecase {
	observations := &fakeObservationFhirClient{byCode: map[string][]models.ObservationTuple{
		constvars.LoincBodyHeight: {tuple(170, "cm", "Patient/1"), tuple(67, "in", "Patient/2")},
		constvars.LoincBodyWeight: {tuple(150, "lb", "Patient/2"), tuple(70, "kg", "Patient/1")},
	}}
	patients := newFakePatientFhirClient(map[string]*fhir_dto.Patient{
		"Patient/1": patient("Mei", "Chen", "female", "1990-05-01"),
		"Patient/2": patient("Wei", "Lin", "male", "1985-12-31"),
	})

	var uc *bmiReportUsecase
	if storage == nil {
		uc = NewBMIReportUsecase(observations, patients, nil, nil, testReportConfig(pairing), zap.NewNop()).(*bmiReportUsecase)
	} else {
		uc = NewBMIReportUsecase(observations, patients, nil, storage, testReportConfig(pairing), zap.NewNop()).(*bmiReportUsecase)
	}
	uc.now = fixedClock
	uc.Joiner.now = fixedClock
	return uc
}

func TestGetBMIReport(t *testing.T) {
	t.Run("Position Pairing", func(t *testing.T) {
		uc := newTestUsecase(nil, constvars.PairingStrategyPosition)

		report, err := uc.GetBMIReport(context.Background(), &requests.BMIReport{Count: 10})

		require.NoError(t, err)
		require.Len(t, report.Rows, 2)
		assert.Equal(t, "position", report.Pairing)
		assert.Equal(t, "Mei Chen", report.Rows[0].Name)
		assert.Equal(t, "150 lb", report.Rows[0].Weight)
		assert.Equal(t, fixedClock(), report.GeneratedAt)
	})

	t.Run("Subject Pairing", func(t *testing.T) {
		uc := newTestUsecase(nil, constvars.PairingStrategySubject)

		report, err := uc.GetBMIReport(context.Background(), &requests.BMIReport{})

		require.NoError(t, err)
		require.Len(t, report.Rows, 2)
		assert.Equal(t, "24.22", report.Rows[0].BMI)
		assert.Equal(t, "23.49", report.Rows[1].BMI)
		assert.Equal(t, "Wei Lin", report.Rows[1].Name)
	})

	t.Run("Cancelled Retrieval", func(t *testing.T) {
		uc := newTestUsecase(nil, constvars.PairingStrategyPosition)
		uc.ObservationFhirClient = &fakeObservationFhirClient{err: exceptions.ErrServerDeadlineExceeded(context.Canceled)}

		report, err := uc.GetBMIReport(context.Background(), &requests.BMIReport{Count: 10})

		assert.Nil(t, report)
		assert.Error(t, err)
	})
}

func TestWriteBMIReportSpreadsheet(t *testing.T) {
	uc := newTestUsecase(nil, constvars.PairingStrategyPosition)
	var buffer bytes.Buffer

	count, err := uc.WriteBMIReportSpreadsheet(context.Background(), &requests.BMIReport{Count: 10}, &buffer)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	f, err := excelize.OpenReader(&buffer)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(constvars.BMIReportSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExportBMIReport(t *testing.T) {
	t.Run("Uploads And Presigns", func(t *testing.T) {
		storage := &fakeStorage{}
		uc := newTestUsecase(storage, constvars.PairingStrategyPosition)

		export, err := uc.ExportBMIReport(context.Background(), &requests.BMIReport{Count: 10})

		require.NoError(t, err)
		assert.Equal(t, "bmi-reports", storage.bucket)
		assert.Equal(t, constvars.MIMEApplicationXLSX, storage.contentType)
		assert.Equal(t, "bmi-report-20240601T000000Z.xlsx", storage.objectName)
		assert.NotEmpty(t, storage.uploaded)
		assert.Equal(t, storage.objectName, export.ObjectName)
		assert.Contains(t, export.URL, "https://minio.local/bmi-reports/")
		assert.Equal(t, 2, export.RowCount)
		assert.Equal(t, fixedClock().Add(15*time.Minute), export.ExpiresAt)
	})

	t.Run("Storage Not Configured", func(t *testing.T) {
		uc := newTestUsecase(nil, constvars.PairingStrategyPosition)

		export, err := uc.ExportBMIReport(context.Background(), &requests.BMIReport{Count: 10})

		assert.Nil(t, export)
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
	})

	t.Run("Upload Failure", func(t *testing.T) {
		storage := &fakeStorage{uploadErr: exceptions.ErrMinioCreateObject(errors.New("bucket missing"), "bmi-reports")}
		uc := newTestUsecase(storage, constvars.PairingStrategyPosition)

		export, err := uc.ExportBMIReport(context.Background(), &requests.BMIReport{Count: 10})

		assert.Nil(t, export)
		assert.Error(t, err)
	})
}
