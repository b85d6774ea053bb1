package routers

import (
	"vitalsign-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachVitalSignRoutes(router chi.Router, vitalSignController *controllers.VitalSignController) {
	router.Post("/", vitalSignController.SubmitVitalSigns)
	router.Post("/bundle", vitalSignController.PreviewBundle)
}
