package bmi_reports

import (
	"context"
	"time"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type redisSubjectCache struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
	Log             *zap.Logger
}

// NewRedisSubjectCache keeps subject lookups in Redis for ttl. Cache errors
// are logged and treated as misses.
func NewRedisSubjectCache(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.SubjectCache {
	return &redisSubjectCache{
		RedisRepository: redisRepository,
		TTL:             ttl,
		Log:             logger,
	}
}

func (c *redisSubjectCache) Get(ctx context.Context, reference string) (*models.SubjectSummary, bool) {
	data, err := c.RedisRepository.Get(ctx, subjectCacheKey(reference))
	if err != nil {
		c.Log.Warn("redisSubjectCache.Get failed", zap.String("subject_reference", reference), zap.Error(err))
		return nil, false
	}
	if data == "" {
		return nil, false
	}

	var summary models.SubjectSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		c.Log.Warn("redisSubjectCache.Get corrupted entry", zap.String("subject_reference", reference), zap.Error(err))
		return nil, false
	}
	return &summary, true
}

func (c *redisSubjectCache) Set(ctx context.Context, summary *models.SubjectSummary) {
	if summary == nil || summary.Reference == "" {
		return
	}
	if err := c.RedisRepository.Set(ctx, subjectCacheKey(summary.Reference), summary, c.TTL); err != nil {
		c.Log.Warn("redisSubjectCache.Set failed", zap.String("subject_reference", summary.Reference), zap.Error(err))
	}
}

func subjectCacheKey(reference string) string {
	return constvars.RedisKeySubjectSummaryPrefix + reference
}
