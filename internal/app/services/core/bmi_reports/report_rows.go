package bmi_reports

import (
	"strconv"
	"strings"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/bmi"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/responses"
)

// BuildReportRows normalizes each pair, computes its BMI and classifies it.
// Rows are numbered from 1.
func BuildReportRows(pairs []models.PairedObservation) []responses.BMIReportRow {
	rows := make([]responses.BMIReportRow, 0, len(pairs))
	for i, pair := range pairs {
		heightM := bmi.NormalizeHeight(pair.Height.Value, pair.Height.Unit)
		weightKg := bmi.NormalizeWeight(pair.Weight.Value, pair.Weight.Unit)
		value := bmi.Calculate(weightKg, heightM)

		rows = append(rows, responses.BMIReportRow{
			Index:  i + 1,
			Name:   displayOrNotFound(pair.Subject.Name),
			Age:    pair.Subject.Age,
			Gender: displayOrNotFound(pair.Subject.Gender),
			Height: formatMeasurement(pair.Height),
			Weight: formatMeasurement(pair.Weight),
			BMI:    bmi.FormatValue(value),
			Status: string(bmi.Classify(value)),
		})
	}
	return rows
}

func formatMeasurement(tuple models.ObservationTuple) string {
	if !tuple.Value.Valid {
		return constvars.DisplayNotFound
	}
	text := strconv.FormatFloat(tuple.Value.Value, 'f', -1, 64)
	return strings.TrimSpace(text + " " + tuple.Unit)
}

func displayOrNotFound(value string) string {
	if value == "" {
		return constvars.DisplayNotFound
	}
	return value
}
