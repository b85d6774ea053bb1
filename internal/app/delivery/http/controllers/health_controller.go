package controllers

import (
	"net/http"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/responses"
	"vitalsign-service/internal/pkg/utils"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.HealthCheck{
		Status:  constvars.ResponseSuccess,
		Version: ctrl.InternalConfig.App.Version,
	})
}
