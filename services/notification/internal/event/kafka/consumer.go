package kafka

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/shestoi/GoCommerce/platform/observability"
	"github.com/shestoi/GoCommerce/services/notification/internal/metrics"
)

// MessageReader часть kafka.Reader, нужная consumer-у
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DeadLetterPublisher получатель сообщений, которые не удалось обработать
type DeadLetterPublisher interface {
	Publish(ctx context.Context, original kafka.Message, cause error) error
}

// HandlerFunc обрабатывает одно сообщение
type HandlerFunc func(ctx context.Context, m kafka.Message) error

// ConsumerConfig параметры повторов
type ConsumerConfig struct {
	Topic       string
	MaxAttempts int
	BackoffBase time.Duration
}

// Consumer читает топик в составе consumer group и обрабатывает сообщения строго по очереди,
// поэтому порядок внутри партиции сохраняется. Offset коммитится после обработки или после DLQ.
type Consumer struct {
	logger *zap.Logger
	reader MessageReader
	handle HandlerFunc
	dlq    DeadLetterPublisher
	cfg    ConsumerConfig
}

// NewConsumer создаёт consumer
func NewConsumer(logger *zap.Logger, reader MessageReader, handle HandlerFunc, dlq DeadLetterPublisher, cfg ConsumerConfig) *Consumer {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Consumer{
		logger: logger.With(zap.String("topic", cfg.Topic)),
		reader: reader,
		handle: handle,
		dlq:    dlq,
		cfg:    cfg,
	}
}

// Start блокируется до отмены ctx или закрытия reader
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info("starting kafka consumer",
		zap.Int("max_retry_attempts", c.cfg.MaxAttempts),
		zap.Duration("retry_backoff_base", c.cfg.BackoffBase),
	)

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.logger.Info("consumer stopped")
				return nil
			}
			c.logger.Error("failed to fetch message from kafka", zap.Error(err))
			if !sleep(ctx, time.Second) {
				return nil
			}
			continue
		}

		if !c.processMessage(ctx, m) {
			// без commit сообщение будет прочитано заново после перезапуска
			return nil
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			c.logger.Error("failed to commit message offset",
				zap.Error(err),
				zap.Int("partition", m.Partition),
				zap.Int64("offset", m.Offset),
			)
			continue
		}

		c.logger.Debug("message offset committed",
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
		)
	}
}

// processMessage возвращает true, если offset можно коммитить
func (c *Consumer) processMessage(ctx context.Context, m kafka.Message) bool {
	ctx = observability.ExtractKafka(ctx, &m)
	ctx, span := otel.Tracer("notification/kafka").Start(ctx, "consume "+m.Topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.destination.name", m.Topic),
			attribute.Int("messaging.kafka.partition", m.Partition),
			attribute.Int64("messaging.kafka.offset", m.Offset),
		),
	)
	defer span.End()

	log := observability.L(ctx, c.logger).With(
		zap.Int("partition", m.Partition),
		zap.Int64("offset", m.Offset),
	)

	err := c.handleWithRetry(ctx, m, log)
	if err == nil {
		return true
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, "message moved to DLQ")
	log.Error("failed to handle message, sending to DLQ", zap.Error(err))

	return c.deadLetter(ctx, m, err, log)
}

// handleWithRetry повторяет обработку с экспоненциальной паузой: base, 2*base, 4*base...
// Ошибки разбора не повторяются.
func (c *Consumer) handleWithRetry(ctx context.Context, m kafka.Message, log *zap.Logger) error {
	var lastErr error

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			backoff := c.cfg.BackoffBase * time.Duration(1<<uint(attempt-2))
			log.Info("retrying message",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", c.cfg.MaxAttempts),
				zap.Duration("backoff", backoff),
			)
			metrics.RecordRetry(c.cfg.Topic)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
		}

		err := c.handle(ctx, m)
		if err == nil {
			return nil
		}

		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			return err
		}

		lastErr = err
		log.Warn("failed to handle message",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.cfg.MaxAttempts),
		)
	}

	return lastErr
}

// deadLetter повторяет публикацию в DLQ, пока она не пройдёт или ctx не отменён
func (c *Consumer) deadLetter(ctx context.Context, m kafka.Message, cause error, log *zap.Logger) bool {
	if ctx.Err() != nil {
		return false
	}

	backoff := c.cfg.BackoffBase
	if backoff <= 0 {
		backoff = time.Second
	}
	for {
		err := c.dlq.Publish(ctx, m, cause)
		if err == nil {
			metrics.RecordDeadLettered(c.cfg.Topic)
			return true
		}
		log.Error("failed to publish to DLQ, retrying", zap.Error(err), zap.Duration("backoff", backoff))
		if !sleep(ctx, backoff) {
			return false
		}
	}
}

// sleep возвращает false, если ctx отменён раньше
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Close закрывает reader
func (c *Consumer) Close() error {
	c.logger.Info("closing kafka consumer")
	return c.reader.Close()
}
