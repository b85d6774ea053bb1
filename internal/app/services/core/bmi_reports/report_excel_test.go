package bmi_reports

import (
	"bytes"
	"testing"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteReportSpreadsheet(t *testing.T) {
	age := 34
	rows := []responses.BMIReportRow{
		{Index: 1, Name: "Mei Chen", Age: &age, Gender: "female", Height: "170 cm", Weight: "70 kg", BMI: "24.22", Status: "Normal"},
		{Index: 2, Name: "-", Gender: "-", Height: "-", Weight: "70 kg", BMI: "Unable to calculate", Status: "N/A"},
	}

	var buffer bytes.Buffer
	require.NoError(t, writeReportSpreadsheet(rows, &buffer))

	f, err := excelize.OpenReader(&buffer)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{constvars.BMIReportSheetName}, f.GetSheetList())

	sheetRows, err := f.GetRows(constvars.BMIReportSheetName)
	require.NoError(t, err)
	require.Len(t, sheetRows, 3)
	assert.Equal(t, reportHeaders, sheetRows[0])
	assert.Equal(t, []string{"1", "Mei Chen", "34", "female", "170 cm", "70 kg", "24.22", "Normal"}, sheetRows[1])
	assert.Equal(t, "-", sheetRows[2][2])
	assert.Equal(t, "N/A", sheetRows[2][7])
}

func TestWriteReportSpreadsheetEmpty(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, writeReportSpreadsheet(nil, &buffer))

	f, err := excelize.OpenReader(&buffer)
	require.NoError(t, err)
	defer f.Close()

	sheetRows, err := f.GetRows(constvars.BMIReportSheetName)
	require.NoError(t, err)
	assert.Len(t, sheetRows, 1)
}
