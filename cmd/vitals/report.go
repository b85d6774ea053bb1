package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"vitalsign-service/internal/app/drivers/httpclient"
	"vitalsign-service/internal/app/services/core/bmi_reports"
	"vitalsign-service/internal/app/services/fhir_spark/observations"
	"vitalsign-service/internal/app/services/fhir_spark/patients"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/requests"
	"vitalsign-service/internal/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (app *cli) reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Pair retrieved heights and weights and print their BMI",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			xlsxPath, _ := cmd.Flags().GetString("xlsx")

			request := &requests.BMIReport{Count: count}
			if err := utils.ValidateStruct(request); err != nil {
				return err
			}

			restClient := httpclient.NewFhirRestClient(app.internalConfig)
			usecase := bmi_reports.NewBMIReportUsecase(
				observations.NewObservationFhirClient(restClient, app.zapLog),
				patients.NewPatientFhirClient(restClient, app.zapLog),
				nil,
				nil,
				app.internalConfig,
				app.zapLog,
			)

			if xlsxPath != "" {
				file, err := os.Create(xlsxPath)
				if err != nil {
					return err
				}
				defer file.Close()

				rows, err := usecase.WriteBMIReportSpreadsheet(cmd.Context(), request, file)
				if err != nil {
					return err
				}
				app.log.WithFields(logrus.Fields{"path": xlsxPath, "rows": rows}).Info("wrote BMI report")
				return nil
			}

			report, err := usecase.GetBMIReport(cmd.Context(), request)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tNAME\tAGE\tGENDER\tHEIGHT\tWEIGHT\tBMI\tSTATUS")
			for _, row := range report.Rows {
				age := constvars.DisplayNotFound
				if row.Age != nil {
					age = fmt.Sprint(*row.Age)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n", row.Index, row.Name, age, row.Gender, row.Height, row.Weight, row.BMI, row.Status)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Int("count", app.internalConfig.BMIReport.PageSize, "Observations requested per search page")
	cmd.Flags().String("xlsx", "", "Write the report to this XLSX file instead of printing it")
	return cmd
}
