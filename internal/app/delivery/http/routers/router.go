package routers

import (
	"fmt"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/app/delivery/http/controllers"
	"vitalsign-service/internal/app/delivery/http/middlewares"
	"vitalsign-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	vitalSignController *controllers.VitalSignController,
	bmiReportController *controllers.BMIReportController,
	healthController *controllers.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderContentDisposition},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", healthController.Liveness)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/vital-signs", func(r chi.Router) {
				attachVitalSignRoutes(r, vitalSignController)
			})

			r.Route("/bmi-reports", func(r chi.Router) {
				attachBMIReportRoutes(r, bmiReportController)
			})
		})
	})
}
