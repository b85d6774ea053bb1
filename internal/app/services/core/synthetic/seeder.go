package synthetic

import (
	"context"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/pkg/dto/responses"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type SeedSummary struct {
	Submitted int
	Accepted  int
	Rejected  int
}

// Seeder submits generated records one at a time, paced by Limiter.
type Seeder struct {
	VitalSignUsecase contracts.VitalSignUsecase
	Limiter          *rate.Limiter
	Log              *logrus.Logger
}

func NewSeeder(vitalSignUsecase contracts.VitalSignUsecase, limiter *rate.Limiter, log *logrus.Logger) *Seeder {
	return &Seeder{
		VitalSignUsecase: vitalSignUsecase,
		Limiter:          limiter,
		Log:              log,
	}
}

// Seed stops early only when ctx ends. Rejected submissions are counted and
// logged, and the next record is tried.
func (s *Seeder) Seed(ctx context.Context, records []Record) (SeedSummary, error) {
	var summary SeedSummary
	for i, record := range records {
		if err := s.Limiter.Wait(ctx); err != nil {
			return summary, err
		}

		result, err := s.VitalSignUsecase.SubmitVitalSigns(ctx, record.Request())
		summary.Submitted++
		if err != nil {
			summary.Rejected++
			s.Log.WithError(err).WithField("record", i+1).Error("submission failed")
			continue
		}
		s.logResult(i+1, record, result)
		if result.Success {
			summary.Accepted++
		} else {
			summary.Rejected++
		}
	}
	return summary, nil
}

func (s *Seeder) logResult(index int, record Record, result *responses.SubmissionResult) {
	entry := s.Log.WithFields(logrus.Fields{
		"record":      index,
		"name":        record.Family + record.Given,
		"status_code": result.StatusCode,
		"bmi":         result.BMIDisplay,
		"category":    result.Category,
	})
	if !result.Success {
		entry.Warn(result.Message)
		return
	}
	if result.PatientURL != nil {
		entry = entry.WithField("patient_url", *result.PatientURL)
	}
	entry.Info("submitted")
}
