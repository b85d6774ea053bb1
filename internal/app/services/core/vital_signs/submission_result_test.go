package vital_signs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubmissionLocations(t *testing.T) {
	base := "https://twcore.hapi.fhir.tw/fhir/"

	t.Run("Transaction Response", func(t *testing.T) {
		body := []byte(`{"resourceType":"Bundle","type":"transaction-response","entry":[
			{"response":{"status":"201 Created","location":"Patient/123/_history/1"}},
			{"response":{"status":"201 Created","location":"Observation/456/_history/1"}}]}`)

		patientURL, observationURL := ParseSubmissionLocations(base, body)

		require.NotNil(t, patientURL)
		require.NotNil(t, observationURL)
		assert.Equal(t, "https://twcore.hapi.fhir.tw/fhir/Patient/123", *patientURL)
		assert.Equal(t, "https://twcore.hapi.fhir.tw/fhir/Observation/456", *observationURL)
	})

	t.Run("Entries Without Location", func(t *testing.T) {
		body := []byte(`{"resourceType":"Bundle","entry":[{"response":{"status":"200 OK"}},{}]}`)

		patientURL, observationURL := ParseSubmissionLocations(base, body)

		assert.Nil(t, patientURL)
		assert.Nil(t, observationURL)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		patientURL, observationURL := ParseSubmissionLocations(base, []byte(`<html>oops</html>`))

		assert.Nil(t, patientURL)
		assert.Nil(t, observationURL)
	})

	t.Run("Not A Bundle", func(t *testing.T) {
		patientURL, observationURL := ParseSubmissionLocations(base, []byte(`{"resourceType":"OperationOutcome"}`))

		assert.Nil(t, patientURL)
		assert.Nil(t, observationURL)
	})
}
