package bmi_reports

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/bmi"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/fhir_dto"
)

type fakePatientFhirClient struct {
	patients map[string]*fhir_dto.Patient
	calls    map[string]int
}

func newFakePatientFhirClient(patients map[string]*fhir_dto.Patient) *fakePatientFhirClient {
	return &fakePatientFhirClient{patients: patients, calls: make(map[string]int)}
}

func (f *fakePatientFhirClient) FindPatientByReference(ctx context.Context, reference string) (*fhir_dto.Patient, error) {
	f.calls[reference]++
	patient, ok := f.patients[reference]
	if !ok {
		return nil, exceptions.ErrNotFoundFHIRResource(errors.New("not found"), "Patient")
	}
	return patient, nil
}

type fakeObservationFhirClient struct {
	byCode map[string][]models.ObservationTuple
	err    error
}

func (f *fakeObservationFhirClient) FindObservationsByCode(ctx context.Context, code string, pageSize int) ([]models.ObservationTuple, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCode[code], nil
}

type memorySubjectCache struct {
	entries map[string]models.SubjectSummary
}

func (m *memorySubjectCache) Get(ctx context.Context, reference string) (*models.SubjectSummary, bool) {
	summary, ok := m.entries[reference]
	if !ok {
		return nil, false
	}
	return &summary, true
}

func (m *memorySubjectCache) Set(ctx context.Context, summary *models.SubjectSummary) {
	m.entries[summary.Reference] = *summary
}

type fakeStorage struct {
	mu          sync.Mutex
	uploaded    []byte
	bucket      string
	objectName  string
	contentType string
	uploadErr   error
}

func (f *fakeStorage) UploadObject(ctx context.Context, reader io.Reader, size int64, bucketName, objectName, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.uploaded = data
	f.bucket = bucketName
	f.objectName = objectName
	f.contentType = contentType
	return objectName, nil
}

func (f *fakeStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	return "https://minio.local/" + bucketName + "/" + objectName + "?X-Amz-Expires=" + expiryTime.String(), nil
}

func tuple(value float64, unit, subject string) models.ObservationTuple {
	return models.ObservationTuple{Value: bmi.Some(value), Unit: unit, SubjectReference: subject}
}

func patient(given, family, gender, birthDate string) *fhir_dto.Patient {
	return &fhir_dto.Patient{
		ResourceType: "Patient",
		Name:         []fhir_dto.HumanName{{Given: []string{given}, Family: family}},
		Gender:       gender,
		BirthDate:    birthDate,
	}
}

func fixedClock() time.Time {
	return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
}
