package utils

import (
	"math"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const fhirDateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("fhir_date", validateFhirDate)
	validate.RegisterValidation("decimal", validateDecimal)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateFhirDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(fhirDateLayout, fl.Field().String())
	return err == nil
}

func validateDecimal(fl validator.FieldLevel) bool {
	value, err := strconv.ParseFloat(fl.Field().String(), 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
