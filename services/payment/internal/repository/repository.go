package repository

import (
	"context"
	"time"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PaymentRepository --dir=. --output=./mocks --outpkg=mocks

// Payment проведённый платёж по заказу. Один заказ = один платёж.
type Payment struct {
	ID             int64
	OrderID        int64
	OrderReference string
	Amount         float64
	PaymentMethod  string
	CustomerID     string
	TransactionID  string
	CreatedAt      time.Time
}

// PaymentRepository хранилище платежей
type PaymentRepository interface {
	// Create сохраняет платёж, если для OrderID его ещё нет, и присваивает ID.
	// Если платёж уже есть, возвращает существующий и created=false.
	Create(ctx context.Context, p Payment) (stored Payment, created bool, err error)
}
