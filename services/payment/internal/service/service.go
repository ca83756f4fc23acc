package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shestoi/GoCommerce/platform/observability"
	"github.com/shestoi/GoCommerce/services/payment/internal/event"
	"github.com/shestoi/GoCommerce/services/payment/internal/metrics"
	"github.com/shestoi/GoCommerce/services/payment/internal/repository"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PaymentEventPublisher --dir=. --output=./mocks --outpkg=mocks

// PaymentEventPublisher публикует подтверждение оплаты
type PaymentEventPublisher interface {
	PublishPaymentConfirmation(ctx context.Context, confirmation event.PaymentConfirmation) error
}

// PaymentService проводит платежи по заказам
type PaymentService struct {
	logger    *zap.Logger
	repo      repository.PaymentRepository
	publisher PaymentEventPublisher
	validator *validator.Validate
}

// NewPaymentService создаёт новый экземпляр PaymentService
func NewPaymentService(logger *zap.Logger, repo repository.PaymentRepository, publisher PaymentEventPublisher) *PaymentService {
	return &PaymentService{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
		validator: newValidator(),
	}
}

// ProcessPayment сохраняет платёж и публикует PaymentConfirmation.
// Идемпотентен по OrderID: повтор возвращает id существующего платежа без повторной публикации.
// Ошибка публикации не откатывает платёж, она логируется и считается.
func (s *PaymentService) ProcessPayment(ctx context.Context, input ProcessPaymentInput) (int64, error) {
	if err := s.validate(input); err != nil {
		return 0, err
	}

	log := observability.L(ctx, s.logger).With(
		zap.Int64("order_id", input.OrderID),
		zap.String("order_reference", input.OrderReference),
	)

	stored, created, err := s.repo.Create(ctx, repository.Payment{
		OrderID:        input.OrderID,
		OrderReference: input.OrderReference,
		Amount:         input.Amount,
		PaymentMethod:  input.PaymentMethod,
		CustomerID:     input.Customer.ID,
		TransactionID:  uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("save payment: %w", err)
	}
	if !created {
		metrics.RecordPayment("duplicate")
		log.Info("payment already processed, returning existing payment", zap.Int64("payment_id", stored.ID))
		return stored.ID, nil
	}
	metrics.RecordPayment("created")
	log.Info("payment processed",
		zap.Int64("payment_id", stored.ID),
		zap.String("transaction_id", stored.TransactionID),
		zap.Float64("amount", stored.Amount),
	)

	if err := s.publisher.PublishPaymentConfirmation(ctx, event.PaymentConfirmation{
		OrderReference:    input.OrderReference,
		Amount:            input.Amount,
		PaymentMethod:     input.PaymentMethod,
		CustomerFirstName: input.Customer.Firstname,
		CustomerLastName:  input.Customer.Lastname,
		CustomerEmail:     input.Customer.Email,
	}); err != nil {
		metrics.RecordPublishFailure()
		log.Error("failed to publish payment confirmation", zap.Error(err))
	}

	return stored.ID, nil
}
