package utils

import "time"

// CalculateAge returns whole years between birthDate (YYYY-MM-DD) and now,
// one less when this year's birthday has not happened yet. Nil when the date
// cannot be parsed.
func CalculateAge(birthDate string, now time.Time) *int {
	if birthDate == "" {
		return nil
	}

	dob, err := time.Parse(fhirDateLayout, birthDate)
	if err != nil {
		return nil
	}

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return &age
}

func FormatFhirDate(t time.Time) string {
	return t.Format(fhirDateLayout)
}
