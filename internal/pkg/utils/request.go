package utils

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
)

// BuildVitalSignsRequest reads the submission fields from either a JSON body
// or an url-encoded/multipart form.
func BuildVitalSignsRequest(r *http.Request) (*requests.VitalSigns, error) {
	request := new(requests.VitalSigns)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constvars.HeaderContentType))
	if mediaType == constvars.MIMEApplicationJSON {
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			return nil, err
		}
		trimVitalSignsRequest(request)
		return request, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	request.Given = r.FormValue("given")
	request.Family = r.FormValue("family")
	request.Gender = r.FormValue("gender")
	request.BirthDate = r.FormValue("birth_date")
	request.Height = requests.NumericString(r.FormValue("height"))
	request.Weight = requests.NumericString(r.FormValue("weight"))
	request.HeightUnit = r.FormValue("height_unit")
	request.WeightUnit = r.FormValue("weight_unit")
	trimVitalSignsRequest(request)

	return request, nil
}

func trimVitalSignsRequest(request *requests.VitalSigns) {
	request.Given = strings.TrimSpace(request.Given)
	request.Family = strings.TrimSpace(request.Family)
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.BirthDate = strings.TrimSpace(request.BirthDate)
	request.Height = requests.NumericString(strings.TrimSpace(request.Height.String()))
	request.Weight = requests.NumericString(strings.TrimSpace(request.Weight.String()))
	request.HeightUnit = strings.TrimSpace(request.HeightUnit)
	request.WeightUnit = strings.TrimSpace(request.WeightUnit)
}

// BuildBMIReportRequest reads ?count=, falling back to defaultCount when it
// is missing. An unparsable count is returned as-is for the validator to
// reject.
func BuildBMIReportRequest(r *http.Request, defaultCount int) (*requests.BMIReport, error) {
	countStr := r.URL.Query().Get("count")
	if countStr == "" {
		return &requests.BMIReport{Count: defaultCount}, nil
	}

	count, err := strconv.Atoi(countStr)
	if err != nil {
		return nil, err
	}
	return &requests.BMIReport{Count: count}, nil
}
