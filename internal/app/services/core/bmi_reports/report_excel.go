package bmi_reports

import (
	"io"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/responses"

	"github.com/xuri/excelize/v2"
)

var reportHeaders = []string{"#", "Name", "Age", "Gender", "Height", "Weight", "BMI", "Status"}

// writeReportSpreadsheet renders rows into a single-sheet workbook.
func writeReportSpreadsheet(rows []responses.BMIReportRow, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := constvars.BMIReportSheetName
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return err
	}

	for col, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(reportHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		var age interface{} = constvars.DisplayNotFound
		if row.Age != nil {
			age = *row.Age
		}
		values := []interface{}{row.Index, row.Name, age, row.Gender, row.Height, row.Weight, row.BMI, row.Status}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "E", "F", 14); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
