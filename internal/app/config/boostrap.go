package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Bootstrap carries the shared drivers into the router. Redis, RabbitMQ and
// Minio are nil when not configured.
type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig

	// Workers are stopped before the drivers they depend on are closed.
	Workers []func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	for _, stop := range b.Workers {
		stop()
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	// zap returns an error syncing stdout on some platforms; it is not fatal.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
