package bmi

import "fmt"

type Category string

const (
	CategoryUnderweight   Category = "Underweight"
	CategoryNormal        Category = "Normal"
	CategoryOverweight    Category = "Overweight"
	CategoryObese         Category = "Obese"
	CategoryNotApplicable Category = "N/A"
)

// UnableToCalculate is shown in place of a BMI value that could not be derived.
const UnableToCalculate = "Unable to calculate"

const (
	underweightUpperBound = 18.5
	normalUpperBound      = 25
	overweightUpperBound  = 30
)

func Classify(value Optional) Category {
	if !value.Valid {
		return CategoryNotApplicable
	}
	switch {
	case value.Value < underweightUpperBound:
		return CategoryUnderweight
	case value.Value < normalUpperBound:
		return CategoryNormal
	case value.Value < overweightUpperBound:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// FormatValue rounds to two decimals for display only.
func FormatValue(value Optional) string {
	if !value.Valid {
		return UnableToCalculate
	}
	return fmt.Sprintf("%.2f", value.Value)
}
