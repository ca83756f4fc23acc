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
	"github.com/shestoi/GoCommerce/services/payment/internal/event"
)

// MessageWriter часть kafka.Writer, нужная publisher-у
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaymentConfirmationPublisher публикует PaymentConfirmation в payment-topic, ключ = номер заказа
type PaymentConfirmationPublisher struct {
	logger *zap.Logger
	writer MessageWriter
	topic  string
}

// NewPaymentConfirmationPublisher создаёт publisher поверх writer, привязанного к topic
func NewPaymentConfirmationPublisher(logger *zap.Logger, writer MessageWriter, topic string) *PaymentConfirmationPublisher {
	return &PaymentConfirmationPublisher{
		logger: logger,
		writer: writer,
		topic:  topic,
	}
}

// PublishPaymentConfirmation реализует service.PaymentEventPublisher
func (p *PaymentConfirmationPublisher) PublishPaymentConfirmation(ctx context.Context, confirmation event.PaymentConfirmation) error {
	value, err := json.Marshal(confirmation)
	if err != nil {
		return fmt.Errorf("marshal payment confirmation: %w", err)
	}

	eventID := uuid.NewString()
	msg := kafka.Message{
		Key:   []byte(confirmation.OrderReference),
		Value: value,
		Headers: []kafka.Header{
			{Key: event.HeaderEventID, Value: []byte(eventID)},
			{Key: event.HeaderEventType, Value: []byte(event.PaymentConfirmationType)},
			{Key: event.HeaderEventVersion, Value: []byte(strconv.Itoa(event.PaymentConfirmationVersion))},
		},
	}
	observability.InjectKafka(ctx, &msg)

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write payment confirmation: %w", err)
	}

	observability.L(ctx, p.logger).Info("payment confirmation published",
		zap.String("topic", p.topic),
		zap.String("order_reference", confirmation.OrderReference),
		zap.String("event_id", eventID),
	)
	return nil
}

// Close закрывает writer
func (p *PaymentConfirmationPublisher) Close() error {
	return p.writer.Close()
}
