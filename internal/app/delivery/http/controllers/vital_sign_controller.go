package controllers

import (
	"net/http"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type VitalSignController struct {
	Log              *zap.Logger
	VitalSignUsecase contracts.VitalSignUsecase
}

func NewVitalSignController(logger *zap.Logger, vitalSignUsecase contracts.VitalSignUsecase) *VitalSignController {
	return &VitalSignController{
		Log:              logger,
		VitalSignUsecase: vitalSignUsecase,
	}
}

// SubmitVitalSigns answers 201 when the FHIR server accepted the bundle and
// 502 when it rejected it or could not be reached. Both carry the result.
func (ctrl *VitalSignController) SubmitVitalSigns(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("VitalSignController.SubmitVitalSigns called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request, err := utils.BuildVitalSignsRequest(r)
	if err != nil {
		ctrl.Log.Error("VitalSignController.SubmitVitalSigns error building request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBuildRequest(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("VitalSignController.SubmitVitalSigns validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.VitalSignUsecase.SubmitVitalSigns(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("VitalSignController.SubmitVitalSigns error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if !result.Success {
		ctrl.Log.Warn("VitalSignController.SubmitVitalSigns submission not accepted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, result.StatusCode),
		)
		utils.BuildResultResponse(w, constvars.StatusBadGateway, false, result.Message, result)
		return
	}

	ctrl.Log.Info("VitalSignController.SubmitVitalSigns succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBMIKey, result.BMIDisplay),
	)
	utils.BuildResultResponse(w, constvars.StatusCreated, true, constvars.SubmitVitalSignsSuccessMessage, result)
}

func (ctrl *VitalSignController) PreviewBundle(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("VitalSignController.PreviewBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request, err := utils.BuildVitalSignsRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBuildRequest(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	preview, err := ctrl.VitalSignUsecase.PreviewBundle(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PreviewBundleSuccessMessage, preview)
}
