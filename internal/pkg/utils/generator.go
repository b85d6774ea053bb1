package utils

import (
	"fmt"
	"strings"
	"time"
	"vitalsign-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateTemporaryID returns a fresh urn:uuid: identifier for a bundle entry.
func GenerateTemporaryID() string {
	return constvars.FhirURNUUIDPrefix + uuid.NewString()
}

func GenerateReportFileName(now time.Time) string {
	return fmt.Sprintf(constvars.BMIReportFileNameFormat, now.UTC().Format(constvars.BMIReportTimeLayout))
}
