package vital_signs

import (
	"context"
	"errors"
	"time"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/bmi"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/requests"
	"vitalsign-service/internal/pkg/dto/responses"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/fhir_dto"
	"vitalsign-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type vitalSignUsecase struct {
	BundleFhirClient    contracts.BundleFhirClient
	SubmissionPublisher contracts.SubmissionPublisher
	Assembler           *BundleAssembler
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
	now                 func() time.Time
}

// NewVitalSignUsecase wires the submission flow. publisher may be nil.
func NewVitalSignUsecase(
	bundleFhirClient contracts.BundleFhirClient,
	publisher contracts.SubmissionPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.VitalSignUsecase {
	return &vitalSignUsecase{
		BundleFhirClient:    bundleFhirClient,
		SubmissionPublisher: publisher,
		Assembler:           NewBundleAssembler(NewResourceBuilder(internalConfig)),
		InternalConfig:      internalConfig,
		Log:                 logger,
		now:                 time.Now,
	}
}

func (uc *vitalSignUsecase) SubmitVitalSigns(ctx context.Context, request *requests.VitalSigns) (*responses.SubmissionResult, error) {
	requestID := utils.RequestIDFromContext(ctx)

	bundle, bmiValue := uc.Assembler.Assemble(ToVitalSigns(request))
	result := newSubmissionResult(request, bmiValue)

	resp, err := uc.BundleFhirClient.PostTransactionBundle(ctx, bundle)
	if err != nil {
		uc.Log.Error("vitalSignUsecase.SubmitVitalSigns error posting bundle",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			result.StatusCode = customErr.StatusCode
			result.Message = customErr.ClientMessage
		} else {
			result.StatusCode = constvars.StatusBadGateway
			result.Message = constvars.ErrClientFHIRServerUnavailable
		}
		return result, nil
	}

	result.StatusCode = resp.StatusCode
	if !resp.IsSuccess() {
		result.Message = rejectionMessage(resp)
		uc.Log.Warn("vitalSignUsecase.SubmitVitalSigns bundle rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingResponseKey, result.Message),
		)
		return result, nil
	}

	result.Success = true
	result.Message = constvars.SubmitVitalSignsSuccessMessage
	result.PatientURL, result.ObservationURL = ParseSubmissionLocations(uc.InternalConfig.FHIR.BaseUrl, resp.Body)

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventVitalSignsSubmitted, requestID,
		zap.Stringp("patient_url", result.PatientURL),
		zap.Stringp("observation_url", result.ObservationURL),
		zap.Float64p(constvars.LoggingBMIKey, bmiValue.Ptr()),
	)
	uc.publishSubmission(ctx, result)

	return result, nil
}

func (uc *vitalSignUsecase) PreviewBundle(ctx context.Context, request *requests.VitalSigns) (*responses.BundlePreview, error) {
	bundle, bmiValue := uc.Assembler.Assemble(ToVitalSigns(request))
	return &responses.BundlePreview{
		Bundle:     bundle,
		BMI:        bmiValue,
		BMIDisplay: bmi.FormatValue(bmiValue),
		Category:   bmi.Classify(bmiValue),
	}, nil
}

// publishSubmission never fails the submission; the server already holds the
// resources at this point.
func (uc *vitalSignUsecase) publishSubmission(ctx context.Context, result *responses.SubmissionResult) {
	if uc.SubmissionPublisher == nil {
		return
	}

	event := &models.SubmissionEvent{
		RequestID:   utils.RequestIDFromContext(ctx),
		BMI:         result.BMI,
		Category:    result.Category,
		SubmittedAt: uc.now().UTC().Format(time.RFC3339),
	}
	if result.PatientURL != nil {
		event.PatientURL = *result.PatientURL
	}
	if result.ObservationURL != nil {
		event.ObservationURL = *result.ObservationURL
	}

	if err := uc.SubmissionPublisher.PublishSubmission(ctx, event); err != nil {
		uc.Log.Error("vitalSignUsecase.publishSubmission failed",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.Error(err),
		)
	}
}

func ToVitalSigns(request *requests.VitalSigns) models.VitalSigns {
	return models.VitalSigns{
		Subject: models.Subject{
			Given:     request.Given,
			Family:    request.Family,
			Gender:    request.Gender,
			BirthDate: request.BirthDate,
		},
		Height: models.Measurement{Raw: request.Height.String(), Unit: request.HeightUnit},
		Weight: models.Measurement{Raw: request.Weight.String(), Unit: request.WeightUnit},
	}
}

func newSubmissionResult(request *requests.VitalSigns, bmiValue bmi.Optional) *responses.SubmissionResult {
	return &responses.SubmissionResult{
		Given:      request.Given,
		Family:     request.Family,
		Gender:     request.Gender,
		BirthDate:  request.BirthDate,
		Height:     request.Height.String(),
		Weight:     request.Weight.String(),
		HeightUnit: request.HeightUnit,
		WeightUnit: request.WeightUnit,
		BMI:        bmiValue,
		BMIDisplay: bmi.FormatValue(bmiValue),
		Category:   bmi.Classify(bmiValue),
	}
}

func rejectionMessage(resp *fhir_dto.TransactionResponse) string {
	if resp.Outcome != nil {
		if diagnostics := resp.Outcome.Diagnostics(); diagnostics != "" {
			return diagnostics
		}
	}
	return constvars.SubmitVitalSignsFailedMessage
}
