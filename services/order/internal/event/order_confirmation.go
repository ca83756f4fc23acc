// Package event описывает схемы событий, которые Order Service публикует в шину.
// Схема принадлежит этой границе; потребители держат свои копии и сверяются по event-version.
package event

const (
	// OrderConfirmationType значение заголовка event-type
	OrderConfirmationType = "order.confirmation"
	// OrderConfirmationVersion значение заголовка event-version
	OrderConfirmationVersion = 1
)

// Заголовки Kafka-сообщений
const (
	HeaderEventID      = "event-id"
	HeaderEventType    = "event-type"
	HeaderEventVersion = "event-version"
)

// OrderConfirmation v1: подтверждение оформленного заказа
type OrderConfirmation struct {
	OrderReference string    `json:"orderReference"`
	TotalAmount    float64   `json:"totalAmount"`
	PaymentMethod  string    `json:"paymentMethod"`
	Customer       Customer  `json:"customer"`
	Products       []Product `json:"products"`
}

// Customer снимок покупателя на момент заказа
type Customer struct {
	ID        string   `json:"id"`
	Firstname string   `json:"firstname"`
	Lastname  string   `json:"lastname"`
	Email     string   `json:"email"`
	Address   *Address `json:"address,omitempty"`
}

// Address адрес покупателя
type Address struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	ZipCode     string `json:"zipCode"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
}

// Product купленный товар
type Product struct {
	ProductID   int64   `json:"productId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
}
