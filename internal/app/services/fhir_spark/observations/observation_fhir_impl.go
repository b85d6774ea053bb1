package observations

import (
	"context"
	"strconv"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/bmi"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/fhir_dto"
	"vitalsign-service/internal/pkg/utils"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type observationFhirClient struct {
	client *resty.Client
	log    *zap.Logger
}

func NewObservationFhirClient(client *resty.Client, logger *zap.Logger) contracts.ObservationFhirClient {
	return &observationFhirClient{client: client, log: logger}
}

func (c *observationFhirClient) FindObservationsByCode(ctx context.Context, code string, pageSize int) ([]models.ObservationTuple, error) {
	requestID := utils.RequestIDFromContext(ctx)
	tuples := make([]models.ObservationTuple, 0)

	pageURL := constvars.ResourceObservation
	visited := make(map[string]bool)
	for page := 1; pageURL != ""; page++ {
		if visited[pageURL] {
			c.log.Warn("observationFhirClient.FindObservationsByCode next link loops back, stopping",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingURLKey, pageURL),
			)
			break
		}
		visited[pageURL] = true

		request := c.client.R().SetContext(ctx)
		if page == 1 {
			request.SetQueryParams(map[string]string{
				"code":   constvars.LoincSystem + "|" + code,
				"_sort":  "-date",
				"_count": strconv.Itoa(pageSize),
			})
		}

		resp, err := request.Get(pageURL)
		if err != nil {
			if ctx.Err() != nil {
				return tuples, exceptions.ErrServerDeadlineExceeded(ctx.Err())
			}
			c.log.Warn("observationFhirClient.FindObservationsByCode page request failed, keeping partial results",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCodeKey, code),
				zap.Int(constvars.LoggingPagesKey, page),
				zap.Error(err),
			)
			break
		}

		if resp.StatusCode() != constvars.StatusOK {
			c.log.Warn("observationFhirClient.FindObservationsByCode page returned non-success status, keeping partial results",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCodeKey, code),
				zap.Int(constvars.LoggingPagesKey, page),
				zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode()),
			)
			break
		}

		var bundle fhir_dto.FHIRBundle
		if err := json.Unmarshal(resp.Body(), &bundle); err != nil {
			c.log.Warn("observationFhirClient.FindObservationsByCode cannot decode page, keeping partial results",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingPagesKey, page),
				zap.Error(err),
			)
			break
		}

		for _, entry := range bundle.Entry {
			tuples = append(tuples, toObservationTuple(entry.Resource, code))
		}
		pageURL = bundle.NextLink()
	}

	c.log.Info("observationFhirClient.FindObservationsByCode finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCodeKey, code),
		zap.Int(constvars.LoggingCountKey, len(tuples)),
	)
	return tuples, nil
}

// toObservationTuple reads valueQuantity, falling back to the component coded
// with code. Fields that cannot be read stay absent.
func toObservationTuple(raw json.RawMessage, code string) models.ObservationTuple {
	var observation fhir_dto.Observation
	if err := json.Unmarshal(raw, &observation); err != nil {
		return models.ObservationTuple{}
	}

	tuple := models.ObservationTuple{}
	if observation.Subject != nil {
		tuple.SubjectReference = observation.Subject.Reference
	}

	quantity := observation.ValueQuantity
	if quantity == nil {
		if component := observation.FindComponent(constvars.LoincSystem, code); component != nil {
			quantity = component.ValueQuantity
		}
	}
	if quantity != nil {
		tuple.Value = bmi.FromPtr(quantity.Value)
		tuple.Unit = quantity.Unit
		if tuple.Unit == "" {
			tuple.Unit = quantity.Code
		}
	}
	return tuple
}
