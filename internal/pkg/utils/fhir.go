package utils

import (
	"strings"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/fhir_dto"
)

// GetFullName joins the given names of the first name entry followed by the
// family name.
func GetFullName(names []fhir_dto.HumanName) string {
	if len(names) == 0 {
		return ""
	}

	name := names[0]
	fullname := strings.Join(name.Given, " ") + " " + name.Family
	return strings.TrimSpace(fullname)
}

// JoinURL concatenates base and path with exactly one slash between them.
func JoinURL(base, path string) string {
	if base == "" {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// ResolveReference turns a reference such as "Patient/1" into an absolute
// URL. Absolute references are returned untouched.
func ResolveReference(base, reference string) string {
	if IsAbsoluteURL(reference) {
		return reference
	}
	return JoinURL(base, reference)
}

// ResolveLocation maps a transaction-response location such as
// "Patient/1/_history/1" to "{base}Patient/1".
func ResolveLocation(base, location string) string {
	if location == "" {
		return ""
	}
	location, _, _ = strings.Cut(location, constvars.FhirHistorySegment)
	return ResolveReference(base, location)
}

func IsAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
