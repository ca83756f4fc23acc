package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/shestoi/GoCommerce/services/payment/internal/event"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestPaymentConfirmationPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := NewPaymentConfirmationPublisher(zaptest.NewLogger(t), w, "payment-topic")

	confirmation := event.PaymentConfirmation{
		OrderReference:    "abc",
		Amount:            50,
		PaymentMethod:     "PAYPAL",
		CustomerFirstName: "Jane",
		CustomerLastName:  "Doe",
		CustomerEmail:     "jane@x.com",
	}
	require.NoError(t, p.PublishPaymentConfirmation(context.Background(), confirmation))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, []byte("abc"), msg.Key)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "payment.confirmation", headers[event.HeaderEventType])
	assert.Equal(t, "1", headers[event.HeaderEventVersion])
	assert.NotEmpty(t, headers[event.HeaderEventID])

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "abc", got["orderReference"])
	assert.Equal(t, 50.0, got["amount"])
	assert.Equal(t, "jane@x.com", got["customerEmail"])
}

func TestPaymentConfirmationPublisher_WriteError(t *testing.T) {
	p := NewPaymentConfirmationPublisher(zaptest.NewLogger(t), &fakeWriter{err: errors.New("broker down")}, "payment-topic")
	err := p.PublishPaymentConfirmation(context.Background(), event.PaymentConfirmation{OrderReference: "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}
