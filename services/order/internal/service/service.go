package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shestoi/GoCommerce/platform/observability"
	"github.com/shestoi/GoCommerce/services/order/internal/event"
	"github.com/shestoi/GoCommerce/services/order/internal/metrics"
	"github.com/shestoi/GoCommerce/services/order/internal/repository"
)

// OrderService оформляет заказы: проверяет покупателя, резервирует товары, сохраняет заказ,
// запрашивает оплату и публикует подтверждение.
// Распределённой транзакции нет: после сохранения заказ не откатывается.
type OrderService struct {
	logger         *zap.Logger
	customerClient CustomerClient
	productClient  ProductClient
	paymentClient  PaymentClient
	publisher      OrderEventPublisher
	orderRepo      repository.OrderRepository
	validator      *validator.Validate
}

// NewOrderService создаёт OrderService
func NewOrderService(
	logger *zap.Logger,
	customerClient CustomerClient,
	productClient ProductClient,
	paymentClient PaymentClient,
	publisher OrderEventPublisher,
	orderRepo repository.OrderRepository,
) *OrderService {
	return &OrderService{
		logger:         logger,
		customerClient: customerClient,
		productClient:  productClient,
		paymentClient:  paymentClient,
		publisher:      publisher,
		orderRepo:      orderRepo,
		validator:      newValidator(),
	}
}

// CreateOrder оформляет заказ и возвращает его id.
//
// До сохранения любая ошибка означает, что ничего не записано:
// *ValidationError, *BusinessError (нет покупателя, каталог отклонил покупку) или ошибка транспорта.
// Сбой оплаты и публикации после сохранения логируется и не возвращается.
// Отмена ctx (клиент отключился) не прерывает оформление: шаги выполняются до конца,
// значения контекста (trace) сохраняются.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (int64, error) {
	ctx = context.WithoutCancel(ctx)
	log := observability.L(ctx, s.logger)

	if err := s.validate(input); err != nil {
		metrics.RecordOrderRejected("validation")
		return 0, err
	}
	log = log.With(zap.String("order_reference", input.Reference), zap.String("customer_id", input.CustomerID))

	customer, found, err := s.customerClient.FindCustomerByID(ctx, input.CustomerID)
	if err != nil {
		return 0, fmt.Errorf("find customer: %w", err)
	}
	if !found {
		metrics.RecordOrderRejected("customer")
		return 0, &BusinessError{
			Message: "Cannot create order:: No customer exist with the provided ID:: " + input.CustomerID,
		}
	}

	purchased, err := s.productClient.PurchaseProducts(ctx, input.Products)
	if err != nil {
		var be *BusinessError
		if errors.As(err, &be) {
			metrics.RecordOrderRejected("products")
			return 0, be
		}
		return 0, fmt.Errorf("purchase products: %w", err)
	}
	if len(purchased) != len(input.Products) {
		metrics.RecordOrderRejected("products")
		return 0, &BusinessError{Message: fmt.Sprintf(
			"An error occurred while purchasing products: expected %d products, got %d",
			len(input.Products), len(purchased))}
	}

	lines := make([]repository.OrderLine, 0, len(input.Products))
	for _, p := range input.Products {
		lines = append(lines, repository.OrderLine{ProductID: p.ProductID, Quantity: p.Quantity})
	}
	orderID, err := s.orderRepo.CreateWithLines(ctx, repository.Order{
		Reference:     input.Reference,
		TotalAmount:   input.Amount,
		PaymentMethod: input.PaymentMethod,
		CustomerID:    input.CustomerID,
	}, lines)
	if err != nil {
		return 0, fmt.Errorf("save order: %w", err)
	}
	metrics.RecordOrderCreated()
	log = log.With(zap.Int64("order_id", orderID))
	log.Info("order saved", zap.Int("lines", len(lines)))

	paymentID, err := s.paymentClient.RequestOrderPayment(ctx, PaymentRequest{
		Amount:         input.Amount,
		PaymentMethod:  input.PaymentMethod,
		OrderID:        orderID,
		OrderReference: input.Reference,
		Customer:       customer,
	})
	if err != nil {
		metrics.RecordStepFailure(metrics.StepPayment)
		log.Error("payment request failed, order stays committed", zap.Error(err))
	} else {
		log.Info("payment requested", zap.Int64("payment_id", paymentID))
	}

	if err := s.publisher.PublishOrderConfirmation(ctx, newOrderConfirmation(input, customer, purchased)); err != nil {
		metrics.RecordStepFailure(metrics.StepPublish)
		log.Error("order confirmation not published, order stays committed", zap.Error(err))
	}

	return orderID, nil
}

// FindAll возвращает все заказы
func (s *OrderService) FindAll(ctx context.Context) ([]repository.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// FindByID возвращает *NotFoundError, если заказа нет
func (s *OrderService) FindByID(ctx context.Context, id int64) (repository.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Order{}, &NotFoundError{ID: id}
		}
		return repository.Order{}, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// FindOrderLines возвращает позиции заказа; для неизвестного заказа пустой список
func (s *OrderService) FindOrderLines(ctx context.Context, orderID int64) ([]repository.OrderLine, error) {
	lines, err := s.orderRepo.ListLines(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	return lines, nil
}

func newOrderConfirmation(input CreateOrderInput, c Customer, purchased []PurchasedProduct) event.OrderConfirmation {
	products := make([]event.Product, 0, len(purchased))
	for _, p := range purchased {
		products = append(products, event.Product{
			ProductID:   p.ProductID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Quantity:    p.Quantity,
		})
	}

	customer := event.Customer{
		ID:        c.ID,
		Firstname: c.Firstname,
		Lastname:  c.Lastname,
		Email:     c.Email,
	}
	if c.Address != nil {
		customer.Address = &event.Address{
			Street:      c.Address.Street,
			HouseNumber: c.Address.HouseNumber,
			ZipCode:     c.Address.ZipCode,
			City:        c.Address.City,
			State:       c.Address.State,
			Country:     c.Address.Country,
		}
	}

	return event.OrderConfirmation{
		OrderReference: input.Reference,
		TotalAmount:    input.Amount,
		PaymentMethod:  string(input.PaymentMethod),
		Customer:       customer,
		Products:       products,
	}
}
