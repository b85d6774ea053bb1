package submissionqueue

import (
	"context"
	"errors"
	"sync"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/app/models"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Service publishes submission events to a durable queue and waits for the
// broker to confirm each one.
type Service struct {
	ch       publisher
	queue    string
	log      *zap.Logger
	confirms <-chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService opens a channel on conn, declares queue as durable and enables
// publisher confirms.
func NewService(conn *amqp.Connection, queue string, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return newService(ch, ch.NotifyPublish(make(chan amqp.Confirmation, 1)), queue, log), nil
}

func newService(ch publisher, confirms <-chan amqp.Confirmation, queue string, log *zap.Logger) *Service {
	return &Service{
		ch:       ch,
		queue:    queue,
		log:      log,
		confirms: confirms,
	}
}

var _ contracts.SubmissionPublisher = (*Service)(nil)

func (s *Service) PublishSubmission(ctx context.Context, event *models.SubmissionEvent) error {
	requestID := utils.RequestIDFromContext(ctx)
	s.log.Info("SubmissionQueue.PublishSubmission called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("queue", s.queue),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		CorrelationId: requestID,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublish(err, s.queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublish(errors.New(constvars.ErrDevRabbitMQNotConfirmed), s.queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublish(ctx.Err(), s.queue)
	}
	return nil
}
