package synthetic

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"Last Name", "First Name", "Gender", "Date of Birth", "Height (cm)", "Weight (kg)"}

// WriteCSV writes records with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, record := range records {
		row := []string{
			record.Family,
			record.Given,
			record.Gender,
			record.BirthDate,
			formatOneDecimal(record.HeightCm),
			formatOneDecimal(record.WeightKg),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatOneDecimal(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}
