package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shestoi/GoCommerce/services/notification/internal/event"
)

// MessageWriter часть kafka.Writer, нужная DLQ publisher-у
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DLQPublisher публикует необработанные сообщения в Dead Letter Queue
type DLQPublisher struct {
	logger *zap.Logger
	writer MessageWriter
}

// NewDLQPublisher создаёт DLQ publisher поверх writer топика notification-dlq
func NewDLQPublisher(logger *zap.Logger, writer MessageWriter) *DLQPublisher {
	return &DLQPublisher{
		logger: logger,
		writer: writer,
	}
}

// DLQMessage тело сообщения в DLQ: исходная запись и причина
type DLQMessage struct {
	OriginalTopic     string    `json:"originalTopic"`
	OriginalPartition int       `json:"originalPartition"`
	OriginalOffset    int64     `json:"originalOffset"`
	OriginalKey       string    `json:"originalKey"`
	OriginalValue     string    `json:"originalValue"`
	ErrorMessage      string    `json:"errorMessage"`
	FailedAt          time.Time `json:"failedAt"`
	EventType         string    `json:"eventType,omitempty"`
	EventID           string    `json:"eventId,omitempty"`
}

// Publish пишет исходное сообщение в DLQ. Ключ и заголовки сохраняются.
func (p *DLQPublisher) Publish(ctx context.Context, original kafka.Message, cause error) error {
	errorMsg := ""
	if cause != nil {
		errorMsg = cause.Error()
	}

	payload, err := json.Marshal(DLQMessage{
		OriginalTopic:     original.Topic,
		OriginalPartition: original.Partition,
		OriginalOffset:    original.Offset,
		OriginalKey:       string(original.Key),
		OriginalValue:     string(original.Value),
		ErrorMessage:      errorMsg,
		FailedAt:          time.Now().UTC(),
		EventType:         headerValue(original, event.HeaderEventType),
		EventID:           headerValue(original, event.HeaderEventID),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal DLQ message: %w", err)
	}

	msg := kafka.Message{
		Key:     original.Key,
		Value:   payload,
		Headers: append([]kafka.Header(nil), original.Headers...),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish message to DLQ",
			zap.Error(err),
			zap.String("original_topic", original.Topic),
			zap.Int("original_partition", original.Partition),
			zap.Int64("original_offset", original.Offset),
		)
		return err
	}

	p.logger.Warn("message published to DLQ",
		zap.String("original_topic", original.Topic),
		zap.Int("original_partition", original.Partition),
		zap.Int64("original_offset", original.Offset),
		zap.String("error_message", errorMsg),
	)
	return nil
}

// Close закрывает writer
func (p *DLQPublisher) Close() error {
	p.logger.Info("closing DLQ publisher")
	return p.writer.Close()
}

func headerValue(m kafka.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
