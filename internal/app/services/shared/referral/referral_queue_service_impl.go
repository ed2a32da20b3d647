package referral

import (
	"context"
	"screening-service/internal/app/contracts"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	referralPublisherInstance contracts.ReferralPublisher
	onceReferralPublisher     sync.Once
)

type referralQueueService struct {
	Channel        *amqp.Channel
	Log            *zap.Logger
	declaredQueues map[string]bool
	mu             sync.Mutex
}

func NewReferralQueueService(conn *amqp.Connection, logger *zap.Logger) (contracts.ReferralPublisher, error) {
	var initErr error
	onceReferralPublisher.Do(func() {
		channel, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}
		referralPublisherInstance = &referralQueueService{
			Channel:        channel,
			Log:            logger,
			declaredQueues: make(map[string]bool),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return referralPublisherInstance, nil
}

// ensureQueue declares the durable queue once per process; repeat declares
// are idempotent on the broker but skipped here to avoid the round trip.
func (s *referralQueueService) ensureQueue(queueName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.declaredQueues[queueName] {
		return nil
	}

	_, err := s.Channel.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}
	s.declaredQueues[queueName] = true
	return nil
}

func (s *referralQueueService) PublishReferral(ctx context.Context, queueName string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("referralQueueService.PublishReferral called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, queueName),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		s.Log.Error("referralQueueService.PublishReferral error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ensureQueue(queueName)
	if err != nil {
		s.Log.Error("referralQueueService.PublishReferral error declaring queue",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	err = s.Channel.PublishWithContext(ctx,
		"",
		queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.Log.Error("referralQueueService.PublishReferral error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	s.Log.Info("referralQueueService.PublishReferral succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, queueName),
	)
	return nil
}
