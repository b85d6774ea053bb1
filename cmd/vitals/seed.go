package main

import (
	"context"
	"os"
	"os/signal"
	"time"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/app/drivers/httpclient"
	"vitalsign-service/internal/app/services/core/synthetic"
	"vitalsign-service/internal/app/services/core/vital_signs"
	"vitalsign-service/internal/app/services/fhir_spark/bundle"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func (app *cli) seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate synthetic patients and submit their vital signs",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			rps, _ := cmd.Flags().GetFloat64("rate")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			csvPath, _ := cmd.Flags().GetString("csv")
			seed, _ := cmd.Flags().GetUint64("seed")

			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			records := synthetic.NewGenerator(seed).Generate(count)
			app.log.WithFields(logrus.Fields{"count": len(records), "seed": seed}).Info("generated synthetic records")

			if csvPath != "" {
				if err := writeCSVFile(csvPath, records); err != nil {
					return err
				}
				app.log.WithField("path", csvPath).Info("wrote records to csv")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			restClient := httpclient.NewFhirRestClient(app.internalConfig)
			usecase := vital_signs.NewVitalSignUsecase(bundle.NewBundleFhirClient(restClient, app.zapLog), nil, app.internalConfig, app.zapLog)

			if dryRun {
				return printBundles(ctx, cmd, usecase, records)
			}

			limit := rate.Limit(rps)
			if rps <= 0 {
				limit = rate.Inf
			}
			limiter := rate.NewLimiter(limit, max(app.internalConfig.Seeder.Burst, 1))
			summary, err := synthetic.NewSeeder(usecase, limiter, app.log).Seed(ctx, records)
			app.log.WithFields(logrus.Fields{
				"submitted": summary.Submitted,
				"accepted":  summary.Accepted,
				"rejected":  summary.Rejected,
			}).Info("seeding finished")
			return err
		},
	}
	cmd.Flags().Int("count", 10, "Number of synthetic patients")
	cmd.Flags().Float64("rate", app.internalConfig.Seeder.RequestsPerSecond, "Submissions per second, 0 for unlimited")
	cmd.Flags().Bool("dry-run", false, "Print the bundles instead of submitting them")
	cmd.Flags().String("csv", "", "Also write the generated records to this CSV file")
	cmd.Flags().Uint64("seed", 0, "Random seed, defaults to the current time")
	return cmd
}

func writeCSVFile(path string, records []synthetic.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return synthetic.WriteCSV(file, records)
}

func printBundles(ctx context.Context, cmd *cobra.Command, usecase contracts.VitalSignUsecase, records []synthetic.Record) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	for _, record := range records {
		preview, err := usecase.PreviewBundle(ctx, record.Request())
		if err != nil {
			return err
		}
		if err := encoder.Encode(preview.Bundle); err != nil {
			return err
		}
	}
	return nil
}
