package repository

import (
	"context"
	"errors"
	"time"
)

// PaymentMethod способ оплаты заказа. Набор значений закрыт.
type PaymentMethod string

const (
	PaymentMethodPaypal     PaymentMethod = "PAYPAL"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodVisa       PaymentMethod = "VISA"
	PaymentMethodMasterCard PaymentMethod = "MASTER_CARD"
	PaymentMethodBitcoin    PaymentMethod = "BITCOIN"
	PaymentMethodCash       PaymentMethod = "CASH"
)

// PaymentMethods все допустимые способы оплаты
var PaymentMethods = []PaymentMethod{
	PaymentMethodPaypal,
	PaymentMethodCreditCard,
	PaymentMethodVisa,
	PaymentMethodMasterCard,
	PaymentMethodBitcoin,
	PaymentMethodCash,
}

// Valid сообщает, входит ли значение в закрытый набор
func (m PaymentMethod) Valid() bool {
	for _, pm := range PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}

// Order доменная модель заказа.
// Заказ существует только после того, как покупатель подтверждён и товары зарезервированы.
type Order struct {
	ID             int64
	Reference      string
	TotalAmount    float64
	PaymentMethod  PaymentMethod
	CustomerID     string
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

// OrderLine одна позиция заказа
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  float64
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OrderRepository --dir=. --output=./mocks --outpkg=mocks

// OrderRepository хранилище заказов и их позиций
type OrderRepository interface {
	// CreateWithLines атомарно сохраняет заказ вместе со всеми позициями и возвращает id заказа.
	// Либо сохраняется всё, либо ничего.
	CreateWithLines(ctx context.Context, order Order, lines []OrderLine) (int64, error)

	// List возвращает все заказы в порядке id
	List(ctx context.Context) ([]Order, error)

	// GetByID возвращает ErrNotFound, если заказа нет
	GetByID(ctx context.Context, id int64) (Order, error)

	// ListLines возвращает позиции заказа в порядке id
	ListLines(ctx context.Context, orderID int64) ([]OrderLine, error)
}

// ErrNotFound возвращается, когда заказ не найден в хранилище
var ErrNotFound = errors.New("order not found")
