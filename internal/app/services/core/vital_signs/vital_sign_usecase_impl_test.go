package vital_signs

import (
	"context"
	"errors"
	"testing"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/bmi"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/requests"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBundleFhirClient struct {
	response *fhir_dto.TransactionResponse
	err      error
	posted   *fhir_dto.TransactionBundle
}

func (f *fakeBundleFhirClient) PostTransactionBundle(ctx context.Context, bundle *fhir_dto.TransactionBundle) (*fhir_dto.TransactionResponse, error) {
	f.posted = bundle
	return f.response, f.err
}

type fakePublisher struct {
	events []*models.SubmissionEvent
	err    error
}

func (f *fakePublisher) PublishSubmission(ctx context.Context, event *models.SubmissionEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func sampleRequest() *requests.VitalSigns {
	return &requests.VitalSigns{
		Given: "Mei", Family: "Chen", Gender: "female", BirthDate: "1990-05-01",
		Height: "170", Weight: "70", HeightUnit: "cm", WeightUnit: "kg",
	}
}

const acceptedBody = `{"resourceType":"Bundle","type":"transaction-response","entry":[
	{"response":{"status":"201 Created","location":"Patient/1/_history/1"}},
	{"response":{"status":"201 Created","location":"Observation/2/_history/1"}}]}`

func TestSubmitVitalSigns(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		client := &fakeBundleFhirClient{response: &fhir_dto.TransactionResponse{StatusCode: 200, Body: []byte(acceptedBody)}}
		publisher := &fakePublisher{}
		uc := NewVitalSignUsecase(client, publisher, testInternalConfig(), zap.NewNop())

		result, err := uc.SubmitVitalSigns(context.Background(), sampleRequest())

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 200, result.StatusCode)
		require.NotNil(t, result.PatientURL)
		assert.Equal(t, "https://twcore.hapi.fhir.tw/fhir/Patient/1", *result.PatientURL)
		assert.Equal(t, "https://twcore.hapi.fhir.tw/fhir/Observation/2", *result.ObservationURL)
		assert.Equal(t, "24.22", result.BMIDisplay)
		assert.Equal(t, bmi.CategoryNormal, result.Category)
		assert.Equal(t, "170", result.Height)
		require.NotNil(t, client.posted)
		assert.Len(t, client.posted.Entry, 2)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, "https://twcore.hapi.fhir.tw/fhir/Patient/1", publisher.events[0].PatientURL)
	})

	t.Run("Rejected By Server", func(t *testing.T) {
		client := &fakeBundleFhirClient{response: &fhir_dto.TransactionResponse{
			StatusCode: 422,
			Body:       []byte(`{"resourceType":"OperationOutcome"}`),
			Outcome:    &fhir_dto.OperationOutcome{Issue: []fhir_dto.Issue{{Severity: "error", Diagnostics: "Profile validation failed"}}},
		}}
		publisher := &fakePublisher{}
		uc := NewVitalSignUsecase(client, publisher, testInternalConfig(), zap.NewNop())

		result, err := uc.SubmitVitalSigns(context.Background(), sampleRequest())

		require.NoError(t, err, "rejection is reported in the result")
		assert.False(t, result.Success)
		assert.Equal(t, 422, result.StatusCode)
		assert.Equal(t, "Profile validation failed", result.Message)
		assert.Nil(t, result.PatientURL)
		assert.Empty(t, publisher.events)
	})

	t.Run("Transport Failure", func(t *testing.T) {
		client := &fakeBundleFhirClient{err: exceptions.ErrSendHTTPRequest(errors.New("connection refused"))}
		uc := NewVitalSignUsecase(client, nil, testInternalConfig(), zap.NewNop())

		result, err := uc.SubmitVitalSigns(context.Background(), sampleRequest())

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, constvars.StatusBadGateway, result.StatusCode)
		assert.Equal(t, constvars.ErrClientFHIRServerUnavailable, result.Message)
	})

	t.Run("Publisher Failure Does Not Fail Submission", func(t *testing.T) {
		client := &fakeBundleFhirClient{response: &fhir_dto.TransactionResponse{StatusCode: 200, Body: []byte(acceptedBody)}}
		publisher := &fakePublisher{err: errors.New("channel closed")}
		uc := NewVitalSignUsecase(client, publisher, testInternalConfig(), zap.NewNop())

		result, err := uc.SubmitVitalSigns(context.Background(), sampleRequest())

		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("Unparsable Success Body", func(t *testing.T) {
		client := &fakeBundleFhirClient{response: &fhir_dto.TransactionResponse{StatusCode: 200, Body: []byte(`not json`)}}
		uc := NewVitalSignUsecase(client, nil, testInternalConfig(), zap.NewNop())

		result, err := uc.SubmitVitalSigns(context.Background(), sampleRequest())

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Nil(t, result.PatientURL)
		assert.Nil(t, result.ObservationURL)
	})
}

func TestPreviewBundle(t *testing.T) {
	uc := NewVitalSignUsecase(&fakeBundleFhirClient{}, nil, testInternalConfig(), zap.NewNop())
	request := sampleRequest()
	request.Height = "abc"

	preview, err := uc.PreviewBundle(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, bmi.UnableToCalculate, preview.BMIDisplay)
	assert.Equal(t, bmi.CategoryNotApplicable, preview.Category)
	bundle, ok := preview.Bundle.(*fhir_dto.TransactionBundle)
	require.True(t, ok)
	assert.Len(t, bundle.Entry, 2)
}
