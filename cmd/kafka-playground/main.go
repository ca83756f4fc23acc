// Command kafka-playground публикует тестовое событие в шину для ручной проверки Notification Service.
//
//	go run ./cmd/kafka-playground -event payment -email jane@x.com
//	go run ./cmd/kafka-playground -event order -reference ORD-42
//	go run ./cmd/kafka-playground -event raw -topic order-topic -value '{broken'
//
// Брокеры берутся из KAFKA_BROKERS (по умолчанию localhost:19092).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	platformkafka "github.com/shestoi/GoCommerce/platform/kafka"
	platformlogging "github.com/shestoi/GoCommerce/platform/logging"
)

func main() {
	var (
		kind      = flag.String("event", "payment", "event kind: payment, order or raw")
		topic     = flag.String("topic", "", "target topic (defaults by event kind)")
		reference = flag.String("reference", "ORD-PLAYGROUND", "order reference, also used as message key")
		mail      = flag.String("email", "jane@example.com", "customer email")
		amount    = flag.Float64("amount", 50, "payment or order amount")
		value     = flag.String("value", "", "raw message value for -event raw")
		version   = flag.Int("version", 1, "event-version header")
	)
	flag.Parse()

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "kafka-playground",
		Env:         "local",
		Level:       "info",
		Format:      "console",
		AddCaller:   true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize logger:", err)
		os.Exit(1)
	}
	defer platformlogging.Sync(logger)

	cfg := platformkafka.DefaultConfig()
	if err := platformkafka.LoadEnv(&cfg); err != nil {
		logger.Fatal("failed to load kafka config", zap.Error(err))
	}

	msg, defaultTopic, err := buildMessage(*kind, *reference, *mail, *amount, *value, *version)
	if err != nil {
		logger.Fatal("failed to build message", zap.Error(err))
	}
	if *topic == "" {
		*topic = defaultTopic
	}

	writer := platformkafka.NewWriter(cfg, *topic)
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Error("failed to close kafka writer", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log := logger.With(
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", *topic),
		zap.String("key", string(msg.Key)),
	)
	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Fatal("failed to send message", zap.Error(err))
	}
	log.Info("message sent", zap.String("value", string(msg.Value)))
}

func buildMessage(kind, reference, email string, amount float64, raw string, version int) (kafka.Message, string, error) {
	var (
		payload   any
		topic     string
		eventType string
	)
	switch kind {
	case "payment":
		topic, eventType = "payment-topic", "payment.confirmation"
		payload = map[string]any{
			"orderReference":    reference,
			"amount":            amount,
			"paymentMethod":     "PAYPAL",
			"customerFirstName": "Jane",
			"customerLastName":  "Doe",
			"customerEmail":     email,
		}
	case "order":
		topic, eventType = "order-topic", "order.confirmation"
		payload = map[string]any{
			"orderReference": reference,
			"totalAmount":    amount,
			"paymentMethod":  "VISA",
			"customer": map[string]any{
				"id":        "1",
				"firstname": "Jane",
				"lastname":  "Doe",
				"email":     email,
			},
			"products": []map[string]any{
				{"productId": 1, "name": "Mechanical keyboard", "description": "", "price": amount, "quantity": 1},
			},
		}
	case "raw":
		return kafka.Message{Key: []byte(reference), Value: []byte(raw)}, "order-topic", nil
	default:
		return kafka.Message{}, "", fmt.Errorf("unknown event kind %q", kind)
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, "", err
	}
	return kafka.Message{
		Key:   []byte(reference),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(uuid.NewString())},
			{Key: "event-type", Value: []byte(eventType)},
			{Key: "event-version", Value: []byte(strconv.Itoa(version))},
		},
	}, topic, nil
}
