package email_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shestoi/GoCommerce/services/notification/internal/email"
	"github.com/shestoi/GoCommerce/services/notification/internal/email/mocks"
	"github.com/shestoi/GoCommerce/services/notification/internal/model"
	"github.com/shestoi/GoCommerce/services/notification/internal/templates"
)

func newRenderer(t *testing.T) *templates.Renderer {
	t.Helper()
	r, err := templates.NewRenderer(zap.NewNop(), "")
	require.NoError(t, err)
	return r
}

func TestDispatcher_RendersAndSends(t *testing.T) {
	sender := mocks.NewSender(t)
	tmpl, _ := model.PaymentConfirmation.Template()

	sender.On("Send", mock.Anything, mock.MatchedBy(func(m email.Mail) bool {
		return m.To == "jane@x.com" &&
			m.Subject == "Payment Successfully Processed" &&
			strings.Contains(m.HTML, "Jane Doe")
	})).Return(nil).Once()

	d := email.NewDispatcher(zap.NewNop(), newRenderer(t), sender, time.Second)
	d.Dispatch(context.Background(), email.Message{
		To:       "jane@x.com",
		Template: tmpl,
		Data:     templates.PaymentConfirmationData{CustomerName: "Jane Doe", Amount: 50, OrderReference: "abc"},
	})
	d.Wait()
}

func TestDispatcher_DoesNotBlockCaller(t *testing.T) {
	sender := mocks.NewSender(t)
	tmpl, _ := model.OrderConfirmation.Template()

	release := make(chan struct{})
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil).Once()

	d := email.NewDispatcher(zap.NewNop(), newRenderer(t), sender, 0)

	returned := make(chan struct{})
	go func() {
		d.Dispatch(context.Background(), email.Message{To: "jane@x.com", Template: tmpl, Data: templates.OrderConfirmationData{}})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on send")
	}

	close(release)
	d.Wait()
}

func TestDispatcher_Failures(t *testing.T) {
	t.Run("send error is swallowed", func(t *testing.T) {
		sender := mocks.NewSender(t)
		tmpl, _ := model.PaymentConfirmation.Template()
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

		d := email.NewDispatcher(zap.NewNop(), newRenderer(t), sender, time.Second)
		d.Dispatch(context.Background(), email.Message{To: "jane@x.com", Template: tmpl, Data: templates.PaymentConfirmationData{}})
		d.Wait()
	})

	t.Run("render error skips send", func(t *testing.T) {
		sender := mocks.NewSender(t)

		d := email.NewDispatcher(zap.NewNop(), newRenderer(t), sender, time.Second)
		d.Dispatch(context.Background(), email.Message{
			To:       "jane@x.com",
			Template: model.EmailTemplate{Name: "missing", Subject: "x"},
		})
		d.Wait()
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("cancelled caller context does not abort send", func(t *testing.T) {
		sender := mocks.NewSender(t)
		tmpl, _ := model.PaymentConfirmation.Template()
		sender.On("Send", mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), mock.Anything).
			Return(nil).Once()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		d := email.NewDispatcher(zap.NewNop(), newRenderer(t), sender, time.Second)
		d.Dispatch(ctx, email.Message{To: "jane@x.com", Template: tmpl, Data: templates.PaymentConfirmationData{}})
		d.Wait()
	})
}
