package kafka

import (
	"github.com/segmentio/kafka-go"
)

// NewWriter создаёт writer для одного топика.
// Каждое событие пишется отдельным синхронным вызовом (BatchSize 1) с подтверждением всех реплик.
func NewWriter(cfg Config, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchSize:              1,
		WriteTimeout:           cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
	}
}

// NewReader создаёт reader в составе consumer group.
// Offset коммитится только явно через CommitMessages.
func NewReader(cfg Config, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        cfg.MaxWait,
		CommitInterval: 0,
		StartOffset:    kafka.FirstOffset,
	})
}
