package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/requests"
	"vitalsign-service/internal/pkg/dto/responses"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type BMIReportController struct {
	Log              *zap.Logger
	BMIReportUsecase contracts.BMIReportUsecase
	InternalConfig   *config.InternalConfig
}

func NewBMIReportController(logger *zap.Logger, bmiReportUsecase contracts.BMIReportUsecase, internalConfig *config.InternalConfig) *BMIReportController {
	return &BMIReportController{
		Log:              logger,
		BMIReportUsecase: bmiReportUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *BMIReportController) GetBMIReport(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("BMIReportController.GetBMIReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	request, ok := ctrl.buildRequest(w, r)
	if !ok {
		return
	}

	report, err := ctrl.BMIReportUsecase.GetBMIReport(r.Context(), request)
	if err != nil {
		ctrl.handleUsecaseError(w, "GetBMIReport", requestID, err)
		return
	}

	ctrl.Log.Info("BMIReportController.GetBMIReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(report.Rows)),
	)
	pagination := &responses.Pagination{
		Total:    len(report.Rows),
		PageSize: request.Count,
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetBMIReportSuccessMessage, pagination, report)
}

// DownloadBMIReport answers with the report as an XLSX attachment.
func (ctrl *BMIReportController) DownloadBMIReport(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("BMIReportController.DownloadBMIReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request, ok := ctrl.buildRequest(w, r)
	if !ok {
		return
	}

	var buffer bytes.Buffer
	rowCount, err := ctrl.BMIReportUsecase.WriteBMIReportSpreadsheet(r.Context(), request, &buffer)
	if err != nil {
		ctrl.handleUsecaseError(w, "DownloadBMIReport", requestID, err)
		return
	}

	fileName := utils.GenerateReportFileName(time.Now())
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationXLSX)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf(constvars.ContentDispositionAttachmentFormat, fileName))
	w.WriteHeader(constvars.StatusOK)
	if _, err := w.Write(buffer.Bytes()); err != nil {
		ctrl.Log.Error("BMIReportController.DownloadBMIReport error writing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	ctrl.Log.Info("BMIReportController.DownloadBMIReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, rowCount),
		zap.Int(constvars.LoggingResponseLengthKey, buffer.Len()),
	)
}

func (ctrl *BMIReportController) CreateBMIReportExport(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("BMIReportController.CreateBMIReportExport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request, ok := ctrl.buildRequest(w, r)
	if !ok {
		return
	}

	export, err := ctrl.BMIReportUsecase.ExportBMIReport(r.Context(), request)
	if err != nil {
		ctrl.handleUsecaseError(w, "CreateBMIReportExport", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBMIReportExportSuccessMsg, export)
}

func (ctrl *BMIReportController) buildRequest(w http.ResponseWriter, r *http.Request) (*requests.BMIReport, bool) {
	request, err := utils.BuildBMIReportRequest(r, ctrl.InternalConfig.BMIReport.PageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "count"))
		return nil, false
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil, false
	}
	return request, true
}

func (ctrl *BMIReportController) handleUsecaseError(w http.ResponseWriter, operation, requestID string, err error) {
	ctrl.Log.Error("BMIReportController."+operation+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
