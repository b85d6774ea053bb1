package patients

import (
	"context"
	"errors"
	"strings"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/fhir_dto"
	"vitalsign-service/internal/pkg/utils"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientFhirClient struct {
	client *resty.Client
	log    *zap.Logger
}

func NewPatientFhirClient(client *resty.Client, logger *zap.Logger) contracts.PatientFhirClient {
	return &patientFhirClient{client: client, log: logger}
}

// FindPatientByReference fetches "Patient/{id}" relative to the base URL, or
// an absolute reference as-is.
func (c *patientFhirClient) FindPatientByReference(ctx context.Context, reference string) (*fhir_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	if strings.TrimSpace(reference) == "" {
		return nil, exceptions.ErrNotFoundFHIRResource(errors.New("empty subject reference"), constvars.ResourcePatient)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		Get(reference)
	if err != nil {
		c.log.Error("patientFhirClient.FindPatientByReference error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, reference),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode() != constvars.StatusOK {
		var outcome fhir_dto.OperationOutcome
		err = json.Unmarshal(resp.Body(), &outcome)
		if err != nil {
			return nil, exceptions.ErrGetFHIRResource(err, constvars.ResourcePatient)
		}

		if len(outcome.Issue) > 0 {
			return nil, exceptions.ErrGetFHIRResource(errors.New(outcome.Diagnostics()), constvars.ResourcePatient)
		}
		return nil, exceptions.ErrGetFHIRResource(errors.New(resp.Status()), constvars.ResourcePatient)
	}

	patientFhir := new(fhir_dto.Patient)
	err = json.Unmarshal(resp.Body(), patientFhir)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}
	if patientFhir.ResourceType != constvars.ResourcePatient {
		return nil, exceptions.ErrDecodeResponse(errors.New("unexpected resourceType "+patientFhir.ResourceType), constvars.ResourcePatient)
	}

	return patientFhir, nil
}
