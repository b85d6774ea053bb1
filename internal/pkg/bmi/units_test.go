package bmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	assert.Equal(t, Some(170), ParseValue("170"))
	assert.Equal(t, Some(67.5), ParseValue(" 67.5 "))
	assert.False(t, ParseValue("abc").Valid, "non numeric input is absent")
	assert.False(t, ParseValue("").Valid)
	assert.False(t, ParseValue("NaN").Valid)
}

func TestNormalizeHeight(t *testing.T) {
	tests := []struct {
		name     string
		value    Optional
		unit     string
		expected float64
	}{
		{"Centimeters", Some(170), "cm", 1.70},
		{"Centimeters Long Form", Some(170), "centimeters", 1.70},
		{"Inches", Some(67), "inch", 1.7018},
		{"UCUM Inches", Some(67), "[in_i]", 1.7018},
		{"Meters Untouched", Some(1.70), "m", 1.70},
		{"Unknown Unit Passes Through", Some(5.6), "ft", 5.6},
		{"Case Insensitive", Some(170), " CM ", 1.70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeHeight(tt.value, tt.unit)
			assert.True(t, result.Valid)
			assert.InDelta(t, tt.expected, result.Value, 1e-9)
		})
	}

	t.Run("Absent Stays Absent", func(t *testing.T) {
		assert.False(t, NormalizeHeight(None, "cm").Valid)
	})

	t.Run("Canonical Is Idempotent", func(t *testing.T) {
		once := NormalizeHeight(Some(170), "cm")
		assert.Equal(t, once, NormalizeHeight(once, "m"))
	})
}

func TestNormalizeWeight(t *testing.T) {
	tests := []struct {
		name     string
		value    Optional
		unit     string
		expected float64
	}{
		{"Kilograms", Some(70), "kg", 70},
		{"Pounds", Some(150), "pound", 68.0388555},
		{"Pound Abbreviation", Some(150), "lb", 68.0388555},
		{"Unknown Unit Passes Through", Some(11), "stone", 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeWeight(tt.value, tt.unit)
			assert.True(t, result.Valid)
			assert.InDelta(t, tt.expected, result.Value, 1e-6)
		})
	}

	t.Run("Absent Stays Absent", func(t *testing.T) {
		assert.False(t, NormalizeWeight(None, "kg").Valid)
	})
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "170cm", DisplayHeight("170", "cm"))
	assert.Equal(t, "67in", DisplayHeight("67", "inch"))
	assert.Equal(t, "5.6 ft", DisplayHeight("5.6", "ft"))
	assert.Equal(t, "70kg", DisplayWeight("70", "kg"))
	assert.Equal(t, "150lb", DisplayWeight("150", "pound"))
	assert.Equal(t, "11 stone", DisplayWeight("11", "stone"))
}
