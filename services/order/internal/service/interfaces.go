package service

import (
	"context"

	"github.com/shestoi/GoCommerce/services/order/internal/event"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CustomerClient --dir=. --output=./mocks --outpkg=mocks

// CustomerClient клиент справочника покупателей
type CustomerClient interface {
	// FindCustomerByID возвращает found=false без ошибки, если покупателя нет.
	// Ошибка означает сбой транспорта или неожиданный ответ.
	FindCustomerByID(ctx context.Context, id string) (customer Customer, found bool, err error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ProductClient --dir=. --output=./mocks --outpkg=mocks

// ProductClient клиент каталога товаров
type ProductClient interface {
	// PurchaseProducts резервирует весь список одним вызовом.
	// Отказ каталога возвращается как *BusinessError.
	PurchaseProducts(ctx context.Context, items []PurchaseRequest) ([]PurchasedProduct, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PaymentClient --dir=. --output=./mocks --outpkg=mocks

// PaymentClient клиент платёжного сервиса
type PaymentClient interface {
	// RequestOrderPayment возвращает id платежа
	RequestOrderPayment(ctx context.Context, req PaymentRequest) (int64, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OrderEventPublisher --dir=. --output=./mocks --outpkg=mocks

// OrderEventPublisher публикует события заказа в шину
type OrderEventPublisher interface {
	PublishOrderConfirmation(ctx context.Context, confirmation event.OrderConfirmation) error
}
