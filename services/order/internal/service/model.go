package service

import "github.com/shestoi/GoCommerce/services/order/internal/repository"

// Customer покупатель из справочника
type Customer struct {
	ID        string
	Firstname string
	Lastname  string
	Email     string
	Address   *Address
}

// Address адрес покупателя
type Address struct {
	Street      string
	HouseNumber string
	ZipCode     string
	City        string
	State       string
	Country     string
}

// PurchaseRequest одна строка запроса на покупку
type PurchaseRequest struct {
	ProductID int64   `field:"productId" validate:"required,gt=0,lte=2147483647"`
	Quantity  float64 `field:"quantity" validate:"gt=0"`
}

// PurchasedProduct ответ каталога на строку PurchaseRequest с тем же индексом
type PurchasedProduct struct {
	ProductID   int64
	Name        string
	Description string
	Price       float64
	Quantity    float64
}

// PaymentRequest запрос на оплату оформленного заказа
type PaymentRequest struct {
	Amount         float64
	PaymentMethod  repository.PaymentMethod
	OrderID        int64
	OrderReference string
	Customer       Customer
}

// CreateOrderInput входные данные для оформления заказа
type CreateOrderInput struct {
	// Reference внешний номер заказа, сохраняется и публикуется как есть
	Reference     string                   `field:"reference"`
	Amount        float64                  `field:"amount" validate:"gt=0,gte=0.01,lt=10000000000"`
	PaymentMethod repository.PaymentMethod `field:"paymentMethod" validate:"required,payment_method"`
	CustomerID    string                   `field:"customerId" validate:"notblank"`
	Products      []PurchaseRequest        `field:"products" validate:"required,min=1,dive"`
}
