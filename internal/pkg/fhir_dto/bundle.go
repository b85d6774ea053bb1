package fhir_dto

import (
	"vitalsign-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

// TransactionBundle is what gets posted to the server root. Resource is left
// as any so the same envelope carries Patient and Observation entries.
type TransactionBundle struct {
	ResourceType string             `json:"resourceType"`
	Type         string             `json:"type"`
	Entry        []TransactionEntry `json:"entry"`
}

type TransactionEntry struct {
	FullURL  string        `json:"fullUrl"`
	Resource any           `json:"resource"`
	Request  BundleRequest `json:"request"`
}

type BundleRequest struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

// FHIRBundle is the decoded form of a bundle returned by the server, either a
// searchset page or a transaction-response.
type FHIRBundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type,omitempty"`
	Total        int           `json:"total,omitempty"`
	Link         []BundleLink  `json:"link,omitempty"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleLink struct {
	Relation string `json:"relation"`
	URL      string `json:"url"`
}

type BundleEntry struct {
	FullURL  string               `json:"fullUrl,omitempty"`
	Resource json.RawMessage      `json:"resource,omitempty"`
	Response *BundleEntryResponse `json:"response,omitempty"`
}

type BundleEntryResponse struct {
	Status       string `json:"status,omitempty"`
	Location     string `json:"location,omitempty"`
	Etag         string `json:"etag,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
}

// NextLink returns the url of the "next" link, or "" on the last page.
func (b *FHIRBundle) NextLink() string {
	for _, link := range b.Link {
		if link.Relation == constvars.FhirBundleLinkRelNext {
			return link.URL
		}
	}
	return ""
}

// TransactionResponse is the raw outcome of posting a transaction bundle.
type TransactionResponse struct {
	StatusCode int
	Body       []byte
	Outcome    *OperationOutcome
}

func (r *TransactionResponse) IsSuccess() bool {
	return r.StatusCode == 200 || r.StatusCode == 201
}
