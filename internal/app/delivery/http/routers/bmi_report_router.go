package routers

import (
	"vitalsign-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBMIReportRoutes(router chi.Router, bmiReportController *controllers.BMIReportController) {
	router.Get("/", bmiReportController.GetBMIReport)
	router.Get("/export", bmiReportController.DownloadBMIReport)
	router.Post("/exports", bmiReportController.CreateBMIReportExport)
}
