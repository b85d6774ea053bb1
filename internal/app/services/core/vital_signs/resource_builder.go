package vital_signs

import (
	"fmt"
	"html"
	"time"
	"vitalsign-service/internal/app/config"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/bmi"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/fhir_dto"
)

// ResourceBuilder turns a submission into TW Core Patient and vital-signs
// Observation resources. It is pure apart from reading the clock for
// effectiveDateTime.
type ResourceBuilder struct {
	fhirConfig config.AppFHIR
	now        func() time.Time
}

func NewResourceBuilder(internalConfig *config.InternalConfig) *ResourceBuilder {
	return &ResourceBuilder{
		fhirConfig: internalConfig.FHIR,
		now:        time.Now,
	}
}

func (b *ResourceBuilder) BuildPatient(subject models.Subject) *fhir_dto.Patient {
	narrative := fmt.Sprintf("Patient: %s %s, Gender: %s, Birth: %s", subject.Family, subject.Given, subject.Gender, subject.BirthDate)

	return &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Meta: &fhir_dto.Meta{
			Profile: []string{b.fhirConfig.PatientProfile},
		},
		Text: generatedNarrative(narrative),
		Identifier: []fhir_dto.Identifier{
			{
				System: b.fhirConfig.PatientIdentifierSystem,
				Value:  subject.Identifier().String(),
			},
		},
		Name: []fhir_dto.HumanName{
			{
				Use:    "official",
				Family: subject.Family,
				Given:  []string{subject.Given},
			},
		},
		Gender:    subject.Gender,
		BirthDate: subject.BirthDate,
	}
}

// BuildObservation builds the vital-signs panel for subjectRef. Height and
// weight components carry the values as entered, in their original units.
// The BMI component is only added when BMI could be calculated, and that
// value is returned as well.
func (b *ResourceBuilder) BuildObservation(height, weight models.Measurement, subjectRef string) (*fhir_dto.Observation, bmi.Optional) {
	heightM := bmi.NormalizeHeight(height.Value(), height.Unit)
	weightKg := bmi.NormalizeWeight(weight.Value(), weight.Unit)
	bmiValue := bmi.Calculate(weightKg, heightM)

	narrative := fmt.Sprintf("Observation: Height=%s, Weight=%s",
		bmi.DisplayHeight(height.Raw, height.Unit),
		bmi.DisplayWeight(weight.Raw, weight.Unit),
	)
	if bmiValue.Valid {
		narrative += ", BMI=" + bmi.FormatValue(bmiValue)
	}

	components := []fhir_dto.Component{
		quantityComponent(constvars.LoincBodyHeight, constvars.LoincBodyHeightDisplay, height.Value(), height.Unit),
		quantityComponent(constvars.LoincBodyWeight, constvars.LoincBodyWeightDisplay, weight.Value(), weight.Unit),
	}
	if bmiValue.Valid {
		components = append(components, quantityComponent(constvars.LoincBMI, constvars.LoincBMIDisplay, bmiValue, constvars.UnitBMI))
	}

	observation := &fhir_dto.Observation{
		ResourceType: constvars.ResourceObservation,
		Meta: &fhir_dto.Meta{
			Profile: []string{b.fhirConfig.ObservationProfile},
		},
		Text:   generatedNarrative(narrative),
		Status: constvars.FhirObservationStatusFinal,
		Category: []fhir_dto.CodeableConcept{
			{
				Coding: []fhir_dto.Coding{
					{
						System:  constvars.FhirObservationCategorySys,
						Code:    constvars.FhirObservationCategoryCode,
						Display: constvars.FhirObservationCategoryLabel,
					},
				},
			},
		},
		Code: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System:  constvars.LoincSystem,
					Code:    constvars.LoincVitalSignsPanel,
					Display: constvars.LoincVitalSignsDisplay,
				},
			},
		},
		Subject:           &fhir_dto.Reference{Reference: subjectRef},
		EffectiveDateTime: b.now().UTC().Format(time.RFC3339),
		Component:         components,
	}
	return observation, bmiValue
}

func quantityComponent(code, display string, value bmi.Optional, unit string) fhir_dto.Component {
	return fhir_dto.Component{
		Code: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System:  constvars.LoincSystem,
					Code:    code,
					Display: display,
				},
			},
		},
		ValueQuantity: &fhir_dto.Quantity{
			Value: value.Ptr(),
			Unit:  unit,
		},
	}
}

func generatedNarrative(text string) *fhir_dto.Narrative {
	return &fhir_dto.Narrative{
		Status: constvars.FhirNarrativeStatusGen,
		Div:    fmt.Sprintf(`<div xmlns="%s">%s</div>`, constvars.FhirXHTMLNamespace, html.EscapeString(text)),
	}
}
