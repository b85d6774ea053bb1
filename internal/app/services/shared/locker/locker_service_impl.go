package locker

import (
	"context"
	"errors"
	"fmt"
	"time"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errLockNotOwned = errors.New("lock held by another owner")

type lockerService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	newToken        func() string
}

// NewLockerService builds a SETNX based lock on top of the redis repository.
// Tokens are JSON encoded by the repository, so Unlock compares the quoted form.
func NewLockerService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockerService{
		RedisRepository: redisRepository,
		Log:             logger,
		newToken:        uuid.NewString,
	}
}

func (s *lockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID := utils.RequestIDFromContext(ctx)

	token := s.newToken()
	acquired, err := s.RedisRepository.TrySetNX(ctx, key, token, expiration)
	if err != nil {
		s.Log.Error("lockerService.TryLock error calling RedisRepository.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, "", err
	}
	if !acquired {
		s.Log.Debug("lockerService.TryLock held elsewhere",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	s.Log.Info("lockerService.TryLock acquired",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, token),
	)
	return true, token, nil
}

// Unlock is a no-op when the key already expired.
func (s *lockerService) Unlock(ctx context.Context, key, token string) error {
	requestID := utils.RequestIDFromContext(ctx)

	stored, err := s.RedisRepository.Get(ctx, key)
	if err != nil {
		return err
	}
	if stored == "" {
		return nil
	}

	if stored != fmt.Sprintf("%q", token) {
		err := exceptions.ErrRedisUnlock(errLockNotOwned)
		s.Log.Warn("lockerService.Unlock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}

	if err := s.RedisRepository.Delete(ctx, key); err != nil {
		return err
	}

	s.Log.Info("lockerService.Unlock released",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return nil
}
