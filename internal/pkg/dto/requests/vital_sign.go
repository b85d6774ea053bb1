package requests

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// NumericString keeps the raw text of a measurement. JSON clients may send
// either 170 or "170"; both decode to the same text.
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*n = NumericString(text)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*n = NumericString(number.String())
	return nil
}

func (n NumericString) String() string {
	return string(n)
}

func (n NumericString) Float() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

type VitalSigns struct {
	Given      string        `json:"given" validate:"required"`
	Family     string        `json:"family" validate:"required"`
	Gender     string        `json:"gender" validate:"required,oneof=male female other unknown"`
	BirthDate  string        `json:"birth_date" validate:"required,fhir_date"`
	Height     NumericString `json:"height" validate:"required,decimal"`
	Weight     NumericString `json:"weight" validate:"required,decimal"`
	HeightUnit string        `json:"height_unit" validate:"required"`
	WeightUnit string        `json:"weight_unit" validate:"required"`
}

type BMIReport struct {
	Count int `json:"count" validate:"gte=1,lte=1000"`
}
