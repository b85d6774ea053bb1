package constvars

type ResourceType string

const (
	ResourcePatient     = "Patient"
	ResourceObservation = "Observation"
	ResourceBundle      = "Bundle"
)

const (
	FhirBundleTypeTransaction = "transaction"
	FhirBundleLinkRelNext     = "next"
	FhirHistorySegment        = "/_history"
	FhirURNUUIDPrefix         = "urn:uuid:"
)

const (
	FhirObservationStatusFinal = "final"
	FhirNarrativeStatusGen     = "generated"
	FhirXHTMLNamespace         = "http://www.w3.org/1999/xhtml"
)

const (
	FhirTWCorePatientProfile     = "https://twcore.mohw.gov.tw/ig/twcore/StructureDefinition/Patient-twcore"
	FhirTWCoreVitalSignsProfile  = "https://twcore.mohw.gov.tw/ig/twcore/StructureDefinition/Observation-vitalSigns-twcore"
	FhirPatientIdentifierSystem  = "http://hospital.local/patient-id"
	FhirObservationCategorySys   = "http://terminology.hl7.org/CodeSystem/observation-category"
	FhirObservationCategoryCode  = "vital-signs"
	FhirObservationCategoryLabel = "Vital Signs"
	FhirUCUMSystem               = "http://unitsofmeasure.org"
)

const (
	LoincSystem = "http://loinc.org"

	LoincBodyHeight        = "8302-2"
	LoincBodyHeightDisplay = "Body height"
	LoincBodyWeight        = "29463-7"
	LoincBodyWeightDisplay = "Body weight"
	LoincBMI               = "39156-5"
	LoincBMIDisplay        = "Body mass index (BMI)"
	LoincVitalSignsPanel   = "85353-1"
	LoincVitalSignsDisplay = "Vital signs, weight, height, head circumference, oxygen saturation and BMI panel"
)

const (
	UnitMeter       = "m"
	UnitKilogram    = "kg"
	UnitBMI         = "kg/m2"
	UnitCentimeter  = "cm"
	UnitInch        = "in"
	UnitPound       = "lb"
	UnitUCUMInch    = "[in_i]"
	UnitUCUMPound   = "[lb_av]"
	UnitCentimeters = "centimeters"
)

const (
	FhirObservationSearchFormat = "%s?code=%s|%s&_sort=-date&_count=%d"
	FhirDefaultBaseURL          = "https://twcore.hapi.fhir.tw/fhir/"
)
