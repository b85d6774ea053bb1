package models

import (
	"fmt"
	"strings"

	"vitalsign-service/internal/pkg/bmi"
)

// SubjectIdentifier is the business identifier synthesized for a patient from
// family name, given name and birth date. Two people sharing all three
// collide; the remote server is left to resolve that.
type SubjectIdentifier struct {
	Family    string
	Given     string
	BirthDate string
}

func NewSubjectIdentifier(family, given, birthDate string) SubjectIdentifier {
	return SubjectIdentifier{
		Family:    strings.TrimSpace(family),
		Given:     strings.TrimSpace(given),
		BirthDate: strings.TrimSpace(birthDate),
	}
}

func (s SubjectIdentifier) String() string {
	return fmt.Sprintf("%s-%s-%s", s.Family, s.Given, s.BirthDate)
}

// Subject is the demographic part of one vital-signs submission.
type Subject struct {
	Given     string
	Family    string
	Gender    string
	BirthDate string
}

func (s Subject) Identifier() SubjectIdentifier {
	return NewSubjectIdentifier(s.Family, s.Given, s.BirthDate)
}

// Measurement is a raw reading as entered, with its unit label.
type Measurement struct {
	Raw  string
	Unit string
}

func (m Measurement) Value() bmi.Optional {
	return bmi.ParseValue(m.Raw)
}

type VitalSigns struct {
	Subject Subject
	Height  Measurement
	Weight  Measurement
}

// ObservationTuple is one (value, unit, subject) triple read back from a
// search page.
type ObservationTuple struct {
	Value            bmi.Optional
	Unit             string
	SubjectReference string
}

// SubjectSummary holds the demographics shown next to a BMI row. Zero values
// mean the lookup failed or the field was missing.
type SubjectSummary struct {
	Reference string `json:"reference"`
	Name      string `json:"name"`
	Age       *int   `json:"age"`
	Gender    string `json:"gender"`
}

type PairedObservation struct {
	Height  ObservationTuple
	Weight  ObservationTuple
	Subject SubjectSummary
}

// SubmissionEvent is published after the server accepted a bundle.
type SubmissionEvent struct {
	RequestID      string       `json:"request_id,omitempty"`
	PatientURL     string       `json:"patient_url"`
	ObservationURL string       `json:"observation_url"`
	BMI            bmi.Optional `json:"bmi"`
	Category       bmi.Category `json:"category"`
	SubmittedAt    string       `json:"submitted_at"`
}
