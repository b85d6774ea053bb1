package database

import (
	"context"
	"fmt"
	"log"
	"vitalsign-service/internal/app/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when REDIS_HOST is empty.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	if driverConfig.Redis.Host == "" {
		log.Println("Redis host not set, subject lookups will not be cached")
		return nil
	}

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}

	log.Println("Successfully connected to redis")
	return rdb
}
