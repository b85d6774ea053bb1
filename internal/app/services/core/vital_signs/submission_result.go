package vital_signs

import (
	"strings"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/fhir_dto"
	"vitalsign-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// ParseSubmissionLocations reads the Patient and Observation locations from a
// transaction-response body. A body that is not a bundle leaves both nil.
func ParseSubmissionLocations(baseURL string, body []byte) (patientURL, observationURL *string) {
	var bundle fhir_dto.FHIRBundle
	if err := json.Unmarshal(body, &bundle); err != nil {
		return nil, nil
	}
	if bundle.ResourceType != constvars.ResourceBundle {
		return nil, nil
	}

	for _, entry := range bundle.Entry {
		if entry.Response == nil || entry.Response.Location == "" {
			continue
		}
		location := entry.Response.Location
		resolved := utils.ResolveLocation(baseURL, location)
		switch {
		case strings.Contains(location, constvars.ResourcePatient):
			patientURL = &resolved
		case strings.Contains(location, constvars.ResourceObservation):
			observationURL = &resolved
		}
	}
	return patientURL, observationURL
}
