package bmi

import (
	"fmt"
	"strconv"
	"strings"
	"vitalsign-service/internal/pkg/constvars"
)

const (
	centimetersPerMeter = 100
	metersPerInch       = 0.0254
	kilogramsPerPound   = 0.45359237
)

var (
	meterUnits      = []string{"m", "meter", "meters", "metre", "metres"}
	centimeterUnits = []string{"cm", "centimeter", "centimeters", "centimetre", "centimetres"}
	inchUnits       = []string{"in", "inch", "inches", "[in_i]"}
	kilogramUnits   = []string{"kg", "kilogram", "kilograms"}
	poundUnits      = []string{"lb", "lbs", "pound", "pounds", "[lb_av]"}
)

// ParseValue reads a decimal from user or server input. Anything that is not
// a finite number yields an absent value.
func ParseValue(raw string) Optional {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return None
	}
	return Some(value)
}

// NormalizeHeight converts a length into meters. Unknown units are passed
// through unconverted.
func NormalizeHeight(value Optional, unit string) Optional {
	if !value.Valid {
		return None
	}
	switch {
	case unitIn(unit, meterUnits):
		return value
	case unitIn(unit, centimeterUnits):
		return Some(value.Value / centimetersPerMeter)
	case unitIn(unit, inchUnits):
		return Some(value.Value * metersPerInch)
	default:
		return value
	}
}

// NormalizeWeight converts a mass into kilograms. Unknown units are passed
// through unconverted.
func NormalizeWeight(value Optional, unit string) Optional {
	if !value.Valid {
		return None
	}
	switch {
	case unitIn(unit, kilogramUnits):
		return value
	case unitIn(unit, poundUnits):
		return Some(value.Value * kilogramsPerPound)
	default:
		return value
	}
}

// DisplayHeight renders the raw height with a compact unit suffix, e.g. "170cm".
func DisplayHeight(raw, unit string) string {
	switch {
	case unitIn(unit, centimeterUnits):
		return raw + constvars.UnitCentimeter
	case unitIn(unit, inchUnits):
		return raw + constvars.UnitInch
	default:
		return fmt.Sprintf("%s %s", raw, unit)
	}
}

// DisplayWeight renders the raw weight with a compact unit suffix, e.g. "70kg".
func DisplayWeight(raw, unit string) string {
	switch {
	case unitIn(unit, kilogramUnits):
		return raw + constvars.UnitKilogram
	case unitIn(unit, poundUnits):
		return raw + constvars.UnitPound
	default:
		return fmt.Sprintf("%s %s", raw, unit)
	}
}

func unitIn(unit string, candidates []string) bool {
	unit = strings.ToLower(strings.TrimSpace(unit))
	for _, candidate := range candidates {
		if unit == candidate {
			return true
		}
	}
	return false
}
