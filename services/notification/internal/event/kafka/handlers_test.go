package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shestoi/GoCommerce/services/notification/internal/event"
	"github.com/shestoi/GoCommerce/services/notification/internal/event/kafka/mocks"
)

func TestPaymentConfirmationHandler(t *testing.T) {
	payload := []byte(`{"orderReference":"abc","amount":50.00,"paymentMethod":"PAYPAL","customerFirstName":"Jane","customerLastName":"Doe","customerEmail":"jane@x.com"}`)

	t.Run("decodes and delegates", func(t *testing.T) {
		svc := mocks.NewNotificationHandler(t)
		svc.On("HandlePaymentConfirmation", mock.Anything, event.PaymentConfirmation{
			OrderReference:    "abc",
			Amount:            50,
			PaymentMethod:     "PAYPAL",
			CustomerFirstName: "Jane",
			CustomerLastName:  "Doe",
			CustomerEmail:     "jane@x.com",
		}).Return(nil).Once()

		err := PaymentConfirmationHandler(svc)(context.Background(), kafka.Message{
			Value:   payload,
			Headers: []kafka.Header{{Key: event.HeaderEventVersion, Value: []byte("1")}},
		})
		require.NoError(t, err)
	})

	t.Run("service error is returned for retry", func(t *testing.T) {
		svc := mocks.NewNotificationHandler(t)
		svc.On("HandlePaymentConfirmation", mock.Anything, mock.Anything).Return(errors.New("save failed")).Once()

		err := PaymentConfirmationHandler(svc)(context.Background(), kafka.Message{Value: payload})
		require.Error(t, err)
		var decodeErr *DecodeError
		assert.False(t, errors.As(err, &decodeErr))
	})
}

func TestHandlers_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		msg  kafka.Message
	}{
		{name: "invalid json", msg: kafka.Message{Value: []byte(`{not json`)}},
		{name: "missing reference", msg: kafka.Message{Value: []byte(`{"amount":1}`)}},
		{name: "unsupported version", msg: kafka.Message{
			Value:   []byte(`{"orderReference":"abc"}`),
			Headers: []kafka.Header{{Key: event.HeaderEventVersion, Value: []byte("2")}},
		}},
		{name: "malformed version", msg: kafka.Message{
			Value:   []byte(`{"orderReference":"abc"}`),
			Headers: []kafka.Header{{Key: event.HeaderEventVersion, Value: []byte("v1")}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewNotificationHandler(t)

			for _, h := range []HandlerFunc{OrderConfirmationHandler(svc), PaymentConfirmationHandler(svc)} {
				err := h(context.Background(), tt.msg)
				var decodeErr *DecodeError
				require.ErrorAs(t, err, &decodeErr)
			}
		})
	}
}

func TestOrderConfirmationHandler(t *testing.T) {
	svc := mocks.NewNotificationHandler(t)
	svc.On("HandleOrderConfirmation", mock.Anything, mock.MatchedBy(func(o event.OrderConfirmation) bool {
		return o.OrderReference == "ORD-1" &&
			o.Customer.Email == "jane@x.com" &&
			len(o.Products) == 1 && o.Products[0].Quantity == 2
	})).Return(nil).Once()

	err := OrderConfirmationHandler(svc)(context.Background(), kafka.Message{
		Value: []byte(`{"orderReference":"ORD-1","totalAmount":20,"paymentMethod":"VISA",` +
			`"customer":{"id":"1","firstname":"Jane","lastname":"Doe","email":"jane@x.com"},` +
			`"products":[{"productId":1,"name":"Keyboard","description":"","price":10,"quantity":2}]}`),
	})
	require.NoError(t, err)
}
