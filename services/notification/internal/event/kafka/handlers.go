package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/shestoi/GoCommerce/services/notification/internal/event"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=NotificationHandler --dir=. --output=./mocks --outpkg=mocks

// SupportedEventVersion версия схемы, которую понимают обработчики
const SupportedEventVersion = 1

// NotificationHandler бизнес-обработка событий
type NotificationHandler interface {
	HandleOrderConfirmation(ctx context.Context, order event.OrderConfirmation) error
	HandlePaymentConfirmation(ctx context.Context, payment event.PaymentConfirmation) error
}

// OrderConfirmationHandler разбирает сообщение order-topic и передаёт его в svc
func OrderConfirmationHandler(svc NotificationHandler) HandlerFunc {
	return func(ctx context.Context, m kafka.Message) error {
		var order event.OrderConfirmation
		if err := decode(m, &order); err != nil {
			return err
		}
		if order.OrderReference == "" {
			return &DecodeError{Field: "orderReference", Message: "orderReference is required"}
		}
		return svc.HandleOrderConfirmation(ctx, order)
	}
}

// PaymentConfirmationHandler разбирает сообщение payment-topic и передаёт его в svc
func PaymentConfirmationHandler(svc NotificationHandler) HandlerFunc {
	return func(ctx context.Context, m kafka.Message) error {
		var payment event.PaymentConfirmation
		if err := decode(m, &payment); err != nil {
			return err
		}
		if payment.OrderReference == "" {
			return &DecodeError{Field: "orderReference", Message: "orderReference is required"}
		}
		return svc.HandlePaymentConfirmation(ctx, payment)
	}
}

// decode проверяет event-version (если заголовок есть) и разбирает JSON
func decode(m kafka.Message, v any) error {
	if raw := headerValue(m, event.HeaderEventVersion); raw != "" {
		version, err := strconv.Atoi(raw)
		if err != nil {
			return &DecodeError{Field: event.HeaderEventVersion, Message: "invalid value " + strconv.Quote(raw)}
		}
		if version != SupportedEventVersion {
			return &DecodeError{Field: event.HeaderEventVersion, Message: "unsupported version " + raw}
		}
	}
	if err := json.Unmarshal(m.Value, v); err != nil {
		return &DecodeError{Message: "invalid JSON payload", Err: err}
	}
	return nil
}
