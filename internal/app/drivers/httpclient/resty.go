package httpclient

import (
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/pkg/constvars"

	"github.com/go-resty/resty/v2"
)

// NewFhirRestClient returns the client shared by the FHIR resource clients.
// No retry and no timeout are configured: each call blocks until the server
// answers or the request context ends.
func NewFhirRestClient(internalConfig *config.InternalConfig) *resty.Client {
	return resty.New().
		SetBaseURL(internalConfig.FHIR.BaseUrl).
		SetHeader(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)
}
