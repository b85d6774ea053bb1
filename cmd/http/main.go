package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/app/delivery/http/controllers"
	"vitalsign-service/internal/app/delivery/http/middlewares"
	"vitalsign-service/internal/app/delivery/http/routers"
	"vitalsign-service/internal/app/drivers/database"
	"vitalsign-service/internal/app/drivers/httpclient"
	"vitalsign-service/internal/app/drivers/logger"
	"vitalsign-service/internal/app/drivers/messaging"
	"vitalsign-service/internal/app/drivers/storage"
	"vitalsign-service/internal/app/services/core/bmi_reports"
	"vitalsign-service/internal/app/services/core/vital_signs"
	"vitalsign-service/internal/app/services/fhir_spark/bundle"
	"vitalsign-service/internal/app/services/fhir_spark/observations"
	"vitalsign-service/internal/app/services/fhir_spark/patients"
	"vitalsign-service/internal/app/services/shared/locker"
	"vitalsign-service/internal/app/services/shared/redis"
	sharedStorage "vitalsign-service/internal/app/services/shared/storage"
	"vitalsign-service/internal/app/services/shared/submissionqueue"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         zapLogger,
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// FHIR clients
	fhirClient := httpclient.NewFhirRestClient(internalConfig)
	bundleFhirClient := bundle.NewBundleFhirClient(fhirClient, log)
	observationFhirClient := observations.NewObservationFhirClient(fhirClient, log)
	patientFhirClient := patients.NewPatientFhirClient(fhirClient, log)

	// Optional collaborators
	var subjectCache contracts.SubjectCache
	var lockerService contracts.LockerService
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		ttl := time.Duration(internalConfig.BMIReport.PatientCacheTTLInSeconds) * time.Second
		subjectCache = bmi_reports.NewRedisSubjectCache(redisRepository, ttl, log)
		lockerService = locker.NewLockerService(redisRepository, log)
	}

	var publisher contracts.SubmissionPublisher
	if bootstrap.RabbitMQ != nil {
		queueService, err := submissionqueue.NewService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.SubmissionQueue, log)
		if err != nil {
			return err
		}
		publisher = queueService
	}

	var reportStorage contracts.Storage
	if bootstrap.Minio != nil {
		reportStorage = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Usecases
	vitalSignUsecase := vital_signs.NewVitalSignUsecase(bundleFhirClient, publisher, internalConfig, log)
	bmiReportUsecase := bmi_reports.NewBMIReportUsecase(observationFhirClient, patientFhirClient, subjectCache, reportStorage, internalConfig, log)

	// Scheduled export needs somewhere to upload to
	if internalConfig.BMIReport.ExportCronSpec != "" && reportStorage != nil {
		exportWorker := bmi_reports.NewExportWorker(log, internalConfig, lockerService, bmiReportUsecase)
		if err := exportWorker.Start(context.Background()); err != nil {
			return err
		}
		bootstrap.Workers = append(bootstrap.Workers, exportWorker.Stop)
	}

	// Delivery
	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares.NewMiddlewares(log, internalConfig),
		controllers.NewVitalSignController(log, vitalSignUsecase),
		controllers.NewBMIReportController(log, bmiReportUsecase, internalConfig),
		controllers.NewHealthController(internalConfig),
	)
	return nil
}
