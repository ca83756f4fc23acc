package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shestoi/GoCommerce/platform/observability"
	"github.com/shestoi/GoCommerce/services/notification/internal/email"
	"github.com/shestoi/GoCommerce/services/notification/internal/event"
	"github.com/shestoi/GoCommerce/services/notification/internal/metrics"
	"github.com/shestoi/GoCommerce/services/notification/internal/model"
	"github.com/shestoi/GoCommerce/services/notification/internal/repository"
	"github.com/shestoi/GoCommerce/services/notification/internal/templates"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EmailDispatcher --dir=. --output=./mocks --outpkg=mocks

// EmailDispatcher неблокирующая отправка письма
type EmailDispatcher interface {
	Dispatch(ctx context.Context, msg email.Message)
}

// NotificationService сохраняет уведомление о событии и ставит письмо в отправку
type NotificationService struct {
	logger     *zap.Logger
	repo       repository.NotificationRepository
	dispatcher EmailDispatcher
	now        func() time.Time
}

// NewNotificationService создаёт новый экземпляр NotificationService
func NewNotificationService(
	logger *zap.Logger,
	repo repository.NotificationRepository,
	dispatcher EmailDispatcher,
) *NotificationService {
	return &NotificationService{
		logger:     logger,
		repo:       repo,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// HandlePaymentConfirmation обрабатывает событие из payment-topic.
// Ошибка возвращается только если уведомление не сохранено; письмо уходит асинхронно.
func (s *NotificationService) HandlePaymentConfirmation(ctx context.Context, payment event.PaymentConfirmation) error {
	observability.L(ctx, s.logger).Info("consuming payment confirmation",
		zap.String("order_reference", payment.OrderReference),
		zap.Float64("amount", payment.Amount),
	)

	n := model.Notification{
		Type:                model.PaymentConfirmation,
		NotificationDate:    s.now(),
		PaymentConfirmation: &payment,
	}
	data := templates.PaymentConfirmationData{
		CustomerName:   payment.CustomerName(),
		Amount:         payment.Amount,
		OrderReference: payment.OrderReference,
	}
	return s.persistAndDispatch(ctx, n, payment.CustomerEmail, data)
}

// HandleOrderConfirmation обрабатывает событие из order-topic
func (s *NotificationService) HandleOrderConfirmation(ctx context.Context, order event.OrderConfirmation) error {
	observability.L(ctx, s.logger).Info("consuming order confirmation",
		zap.String("order_reference", order.OrderReference),
		zap.Float64("total_amount", order.TotalAmount),
		zap.Int("products", len(order.Products)),
	)

	n := model.Notification{
		Type:              model.OrderConfirmation,
		NotificationDate:  s.now(),
		OrderConfirmation: &order,
	}

	lines := make([]templates.ProductLine, 0, len(order.Products))
	for _, p := range order.Products {
		lines = append(lines, templates.ProductLine{Name: p.Name, Quantity: p.Quantity, Price: p.Price})
	}
	data := templates.OrderConfirmationData{
		CustomerName:   order.Customer.CustomerName(),
		TotalAmount:    order.TotalAmount,
		OrderReference: order.OrderReference,
		Products:       lines,
	}
	return s.persistAndDispatch(ctx, n, order.Customer.Email, data)
}

func (s *NotificationService) persistAndDispatch(ctx context.Context, n model.Notification, to string, data any) error {
	tmpl, ok := n.Type.Template()
	if !ok {
		return fmt.Errorf("unknown notification type %q", n.Type)
	}

	id, err := s.repo.Save(ctx, n)
	if err != nil {
		return fmt.Errorf("save notification: %w", err)
	}
	metrics.RecordPersisted(string(n.Type))

	observability.L(ctx, s.logger).Info("notification persisted",
		zap.String("notification_id", id),
		zap.String("type", string(n.Type)),
	)

	s.dispatcher.Dispatch(ctx, email.Message{To: to, Template: tmpl, Data: data})
	return nil
}
