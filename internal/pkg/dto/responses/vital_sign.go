package responses

import "vitalsign-service/internal/pkg/bmi"

// SubmissionResult is returned for every submission attempt. A rejected or
// failed submission is reported through Success and StatusCode, not an error.
type SubmissionResult struct {
	Success        bool         `json:"success"`
	StatusCode     int          `json:"status_code"`
	Message        string       `json:"message,omitempty"`
	PatientURL     *string      `json:"patient_url"`
	ObservationURL *string      `json:"observation_url"`
	Given          string       `json:"given"`
	Family         string       `json:"family"`
	Gender         string       `json:"gender"`
	BirthDate      string       `json:"birth_date"`
	Height         string       `json:"height"`
	Weight         string       `json:"weight"`
	HeightUnit     string       `json:"height_unit"`
	WeightUnit     string       `json:"weight_unit"`
	BMI            bmi.Optional `json:"bmi"`
	BMIDisplay     string       `json:"bmi_display"`
	Category       bmi.Category `json:"category"`
}

type BundlePreview struct {
	Bundle     any          `json:"bundle"`
	BMI        bmi.Optional `json:"bmi"`
	BMIDisplay string       `json:"bmi_display"`
	Category   bmi.Category `json:"category"`
}
