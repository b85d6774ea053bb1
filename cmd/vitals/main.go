package main

import (
	"os"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/app/drivers/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cli struct {
	driverConfig   *config.DriverConfig
	internalConfig *config.InternalConfig
	log            *logrus.Logger
	zapLog         *zap.Logger
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	app := &cli{
		driverConfig:   driverConfig,
		internalConfig: internalConfig,
		log:            logger.NewLogrusLogger(driverConfig, internalConfig),
		zapLog:         zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:           "vitals",
		Short:         "Submit vital signs to a FHIR server and report BMI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("fhir-base-url", internalConfig.FHIR.BaseUrl, "FHIR server base URL")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		baseURL, _ := cmd.Flags().GetString("fhir-base-url")
		app.internalConfig.FHIR.BaseUrl = baseURL
	}

	rootCmd.AddCommand(app.seedCmd())
	rootCmd.AddCommand(app.reportCmd())
	rootCmd.AddCommand(app.bundleCmd())

	if err := rootCmd.Execute(); err != nil {
		app.log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
