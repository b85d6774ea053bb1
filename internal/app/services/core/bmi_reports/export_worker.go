package bmi_reports

import (
	"context"
	"time"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/requests"
	"vitalsign-service/internal/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ExportWorker uploads a BMI report on a cron schedule. When a locker is
// present only the replica holding the leader lock exports on each tick.
type ExportWorker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	usecase contracts.BMIReportUsecase
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
}

func NewExportWorker(log *zap.Logger, cfg *config.InternalConfig, locker contracts.LockerService, usecase contracts.BMIReportUsecase) *ExportWorker {
	return &ExportWorker{log: log, cfg: cfg, locker: locker, usecase: usecase}
}

// Start schedules the export. An invalid cron spec is returned rather than
// replaced, so a typo never turns into an unexpected schedule.
func (w *ExportWorker) Start(ctx context.Context) error {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	c := cron.New()
	spec := w.cfg.BMIReport.ExportCronSpec
	if _, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) }); err != nil {
		w.cancel()
		return err
	}
	c.Start()
	w.cron = c

	w.log.Info("bmi_reports.ExportWorker scheduled", zap.String(constvars.LoggingCronSpecKey, spec))
	return nil
}

// Stop waits for an in-flight export to finish.
func (w *ExportWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *ExportWorker) runOnce(ctx context.Context) {
	ctx = utils.ContextWithRequestID(ctx, utils.GenerateRequestID())
	requestID := utils.RequestIDFromContext(ctx)

	if w.locker != nil {
		ttl := time.Duration(w.cfg.BMIReport.ExportLockTTLInSeconds) * time.Second
		acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyExportLeader, ttl)
		if err != nil {
			w.log.Warn("bmi_reports.ExportWorker leader lock attempt failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return
		}
		if !acquired {
			return
		}
		defer func() {
			if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyExportLeader, token); err != nil {
				w.log.Warn("bmi_reports.ExportWorker error releasing leader lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
		}()
	}

	export, err := w.usecase.ExportBMIReport(ctx, &requests.BMIReport{Count: w.cfg.BMIReport.PageSize})
	if err != nil {
		w.log.Error("bmi_reports.ExportWorker export failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	w.log.Info("bmi_reports.ExportWorker export uploaded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("object_name", export.ObjectName),
		zap.Int(constvars.LoggingCountKey, export.RowCount),
	)
}
