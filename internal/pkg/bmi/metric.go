// Package bmi holds the unit normalization, body-mass-index calculation and
// weight-status classification shared by submission and reporting.
package bmi

import (
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// Optional is a float that may be absent. An absent value is never zero: it
// marshals to JSON null and renders as a distinguishable marker.
type Optional struct {
	Value float64
	Valid bool
}

var None = Optional{}

func Some(value float64) Optional {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return None
	}
	return Optional{Value: value, Valid: true}
}

// FromPtr converts a nullable FHIR decimal.
func FromPtr(value *float64) Optional {
	if value == nil {
		return None
	}
	return Some(*value)
}

func (o Optional) Ptr() *float64 {
	if !o.Valid {
		return nil
	}
	value := o.Value
	return &value
}

func (o Optional) String() string {
	if !o.Valid {
		return ""
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *Optional) UnmarshalJSON(data []byte) error {
	var value *float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = FromPtr(value)
	return nil
}

// Calculate returns massKg / lengthM². The result is absent when either input
// is absent, the mass is not positive or the length is not strictly positive.
// No rounding is applied.
func Calculate(massKg, lengthM Optional) Optional {
	if !massKg.Valid || !lengthM.Valid {
		return None
	}
	if massKg.Value <= 0 || lengthM.Value <= 0 {
		return None
	}
	return Some(massKg.Value / (lengthM.Value * lengthM.Value))
}
