package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shestoi/GoCommerce/platform/observability"
	"github.com/shestoi/GoCommerce/services/order/internal/event"
)

// MessageWriter часть kafka.Writer, нужная publisher-у
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderConfirmationPublisher публикует OrderConfirmation в order-topic.
// Одно событие = один синхронный WriteMessages; ключ = номер заказа,
// поэтому события одного заказа попадают в одну партицию.
type OrderConfirmationPublisher struct {
	logger *zap.Logger
	writer MessageWriter
	topic  string
}

// NewOrderConfirmationPublisher создаёт publisher поверх writer, привязанного к topic
func NewOrderConfirmationPublisher(logger *zap.Logger, writer MessageWriter, topic string) *OrderConfirmationPublisher {
	return &OrderConfirmationPublisher{
		logger: logger,
		writer: writer,
		topic:  topic,
	}
}

// PublishOrderConfirmation реализует service.OrderEventPublisher
func (p *OrderConfirmationPublisher) PublishOrderConfirmation(ctx context.Context, confirmation event.OrderConfirmation) error {
	log := observability.L(ctx, p.logger).With(
		zap.String("topic", p.topic),
		zap.String("order_reference", confirmation.OrderReference),
	)

	value, err := json.Marshal(confirmation)
	if err != nil {
		return fmt.Errorf("marshal order confirmation: %w", err)
	}

	eventID := uuid.NewString()
	msg := kafka.Message{
		Key:   []byte(confirmation.OrderReference),
		Value: value,
		Headers: []kafka.Header{
			{Key: event.HeaderEventID, Value: []byte(eventID)},
			{Key: event.HeaderEventType, Value: []byte(event.OrderConfirmationType)},
			{Key: event.HeaderEventVersion, Value: []byte(strconv.Itoa(event.OrderConfirmationVersion))},
		},
	}
	observability.InjectKafka(ctx, &msg)

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Error("failed to publish order confirmation", zap.Error(err))
		return fmt.Errorf("write order confirmation: %w", err)
	}

	log.Info("order confirmation published", zap.String("event_id", eventID))
	return nil
}

// Close закрывает writer
func (p *OrderConfirmationPublisher) Close() error {
	return p.writer.Close()
}
