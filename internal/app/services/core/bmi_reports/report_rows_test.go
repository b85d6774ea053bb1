package bmi_reports

import (
	"testing"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/bmi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportRows(t *testing.T) {
	age := 34
	pairs := []models.PairedObservation{
		{
			Height:  tuple(170, "cm", "Patient/1"),
			Weight:  tuple(70, "kg", ""),
			Subject: models.SubjectSummary{Reference: "Patient/1", Name: "Mei Chen", Age: &age, Gender: "female"},
		},
		{
			Height: tuple(67, "[in_i]", "Patient/2"),
			Weight: tuple(150, "[lb_av]", ""),
		},
		{
			Height: models.ObservationTuple{Value: bmi.None, Unit: "cm"},
			Weight: tuple(70, "kg", ""),
		},
		{
			Height: tuple(1.5, "m", ""),
			Weight: tuple(90, "kg", ""),
		},
	}

	rows := BuildReportRows(pairs)

	require.Len(t, rows, 4)

	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, "Mei Chen", rows[0].Name)
	assert.Equal(t, &age, rows[0].Age)
	assert.Equal(t, "170 cm", rows[0].Height)
	assert.Equal(t, "70 kg", rows[0].Weight)
	assert.Equal(t, "24.22", rows[0].BMI)
	assert.Equal(t, "Normal", rows[0].Status)

	assert.Equal(t, "-", rows[1].Name)
	assert.Nil(t, rows[1].Age)
	assert.Equal(t, "23.49", rows[1].BMI, "imperial units are normalized before the calculation")

	assert.Equal(t, "-", rows[2].Height)
	assert.Equal(t, "Unable to calculate", rows[2].BMI)
	assert.Equal(t, "N/A", rows[2].Status)

	assert.Equal(t, "40.00", rows[3].BMI)
	assert.Equal(t, "Obese", rows[3].Status)
	assert.Equal(t, 4, rows[3].Index)
}
