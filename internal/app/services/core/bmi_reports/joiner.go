package bmi_reports

import (
	"context"
	"time"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Joiner pairs independently retrieved height and weight observations and
// attaches the demographics of the height's subject.
type Joiner struct {
	PatientFhirClient contracts.PatientFhirClient
	SubjectCache      contracts.SubjectCache
	Log               *zap.Logger
	now               func() time.Time
}

// NewJoiner builds a Joiner. cache may be nil.
func NewJoiner(patientFhirClient contracts.PatientFhirClient, cache contracts.SubjectCache, logger *zap.Logger) *Joiner {
	return &Joiner{
		PatientFhirClient: patientFhirClient,
		SubjectCache:      cache,
		Log:               logger,
		now:               time.Now,
	}
}

// Join pairs heights with weights using strategy and resolves every pair's
// subject. A failed lookup leaves the subject fields empty for that pair only.
func (j *Joiner) Join(ctx context.Context, heights, weights []models.ObservationTuple, strategy string) []models.PairedObservation {
	var pairs [][2]models.ObservationTuple
	switch strategy {
	case constvars.PairingStrategySubject:
		pairs = pairBySubject(heights, weights)
	default:
		pairs = pairByPosition(heights, weights)
	}

	resolved := make(map[string]models.SubjectSummary)
	result := make([]models.PairedObservation, 0, len(pairs))
	for _, pair := range pairs {
		result = append(result, models.PairedObservation{
			Height:  pair[0],
			Weight:  pair[1],
			Subject: j.resolveSubject(ctx, pair[0].SubjectReference, resolved),
		})
	}
	return result
}

// pairByPosition zips both sequences up to the shorter length. Nothing checks
// that the two entries belong to the same subject.
func pairByPosition(heights, weights []models.ObservationTuple) [][2]models.ObservationTuple {
	n := min(len(heights), len(weights))
	pairs := make([][2]models.ObservationTuple, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]models.ObservationTuple{heights[i], weights[i]})
	}
	return pairs
}

// pairBySubject matches each height with the first unused weight carrying the
// same subject reference. Heights without a match are dropped.
func pairBySubject(heights, weights []models.ObservationTuple) [][2]models.ObservationTuple {
	unused := make(map[string][]int)
	for i, weight := range weights {
		if weight.SubjectReference == "" {
			continue
		}
		unused[weight.SubjectReference] = append(unused[weight.SubjectReference], i)
	}

	pairs := make([][2]models.ObservationTuple, 0, min(len(heights), len(weights)))
	for _, height := range heights {
		candidates := unused[height.SubjectReference]
		if len(candidates) == 0 {
			continue
		}
		pairs = append(pairs, [2]models.ObservationTuple{height, weights[candidates[0]]})
		unused[height.SubjectReference] = candidates[1:]
	}
	return pairs
}

func (j *Joiner) resolveSubject(ctx context.Context, reference string, resolved map[string]models.SubjectSummary) models.SubjectSummary {
	if reference == "" {
		return models.SubjectSummary{}
	}
	if summary, ok := resolved[reference]; ok {
		return summary
	}

	if j.SubjectCache != nil {
		if cached, ok := j.SubjectCache.Get(ctx, reference); ok {
			resolved[reference] = *cached
			return *cached
		}
	}

	patient, err := j.PatientFhirClient.FindPatientByReference(ctx, reference)
	if err != nil {
		j.Log.Warn("Joiner.resolveSubject lookup failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String("subject_reference", reference),
			zap.Error(err),
		)
		summary := models.SubjectSummary{Reference: reference}
		resolved[reference] = summary
		return summary
	}

	summary := models.SubjectSummary{
		Reference: reference,
		Name:      utils.GetFullName(patient.Name),
		Age:       utils.CalculateAge(patient.BirthDate, j.now()),
		Gender:    patient.Gender,
	}
	resolved[reference] = summary
	if j.SubjectCache != nil {
		j.SubjectCache.Set(ctx, &summary)
	}
	return summary
}
