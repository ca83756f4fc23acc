package service

// Customer плательщик
type Customer struct {
	ID        string `field:"id"`
	Firstname string `field:"firstname" validate:"notblank"`
	Lastname  string `field:"lastname" validate:"notblank"`
	Email     string `field:"email" validate:"required,email"`
}

// ProcessPaymentInput запрос на оплату заказа
type ProcessPaymentInput struct {
	Amount         float64  `field:"amount" validate:"gt=0"`
	PaymentMethod  string   `field:"paymentMethod" validate:"notblank"`
	OrderID        int64    `field:"orderId" validate:"gt=0"`
	OrderReference string   `field:"orderReference"`
	Customer       Customer `field:"customer"`
}
