package bundle

import (
	"context"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/fhir_dto"
	"vitalsign-service/internal/pkg/utils"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type bundleFhirClient struct {
	client *resty.Client
	log    *zap.Logger
}

func NewBundleFhirClient(client *resty.Client, logger *zap.Logger) contracts.BundleFhirClient {
	return &bundleFhirClient{client: client, log: logger}
}

// PostTransactionBundle posts to the server root. Non-success statuses are
// handed back with the decoded OperationOutcome, when there is one.
func (c *bundleFhirClient) PostTransactionBundle(ctx context.Context, bundle *fhir_dto.TransactionBundle) (*fhir_dto.TransactionResponse, error) {
	requestID := utils.RequestIDFromContext(ctx)
	requestJSON, err := json.Marshal(bundle)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON).
		SetBody(requestJSON).
		Post("")
	if err != nil {
		c.log.Error("bundleFhirClient.PostTransactionBundle error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if ctx.Err() != nil {
			return nil, exceptions.ErrServerDeadlineExceeded(ctx.Err())
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	result := &fhir_dto.TransactionResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}
	if result.IsSuccess() {
		c.log.Info("bundleFhirClient.PostTransactionBundle succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, result.StatusCode),
		)
		return result, nil
	}

	var outcome fhir_dto.OperationOutcome
	if uerr := json.Unmarshal(result.Body, &outcome); uerr == nil && len(outcome.Issue) > 0 {
		result.Outcome = &outcome
	}
	c.log.Warn("bundleFhirClient.PostTransactionBundle rejected by FHIR server",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, result.StatusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(result.Body)),
	)
	return result, nil
}
