package logger

import (
	"os"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the console logger used by the command line tool.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch internalConfig.App.Env {
	case constvars.AppEnvironmentProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
