// Package event схемы входящих событий Notification Service.
// Копии схем издателей; совместимость проверяется по заголовку event-version.
package event

// Заголовки Kafka-сообщений
const (
	HeaderEventID      = "event-id"
	HeaderEventType    = "event-type"
	HeaderEventVersion = "event-version"
)

// OrderConfirmation v1 из order-topic
type OrderConfirmation struct {
	OrderReference string    `json:"orderReference" bson:"orderReference"`
	TotalAmount    float64   `json:"totalAmount" bson:"totalAmount"`
	PaymentMethod  string    `json:"paymentMethod" bson:"paymentMethod"`
	Customer       Customer  `json:"customer" bson:"customer"`
	Products       []Product `json:"products" bson:"products"`
}

// Customer покупатель из OrderConfirmation
type Customer struct {
	ID        string   `json:"id" bson:"id"`
	Firstname string   `json:"firstname" bson:"firstname"`
	Lastname  string   `json:"lastname" bson:"lastname"`
	Email     string   `json:"email" bson:"email"`
	Address   *Address `json:"address,omitempty" bson:"address,omitempty"`
}

// Address адрес покупателя
type Address struct {
	Street      string `json:"street" bson:"street"`
	HouseNumber string `json:"houseNumber" bson:"houseNumber"`
	ZipCode     string `json:"zipCode" bson:"zipCode"`
	City        string `json:"city,omitempty" bson:"city,omitempty"`
	State       string `json:"state,omitempty" bson:"state,omitempty"`
	Country     string `json:"country,omitempty" bson:"country,omitempty"`
}

// Product позиция заказа
type Product struct {
	ProductID   int64   `json:"productId" bson:"productId"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    float64 `json:"quantity" bson:"quantity"`
}

// PaymentConfirmation v1 из payment-topic
type PaymentConfirmation struct {
	OrderReference    string  `json:"orderReference" bson:"orderReference"`
	Amount            float64 `json:"amount" bson:"amount"`
	PaymentMethod     string  `json:"paymentMethod" bson:"paymentMethod"`
	CustomerFirstName string  `json:"customerFirstName" bson:"customerFirstName"`
	CustomerLastName  string  `json:"customerLastName" bson:"customerLastName"`
	CustomerEmail     string  `json:"customerEmail" bson:"customerEmail"`
}

// CustomerName имя и фамилия через пробел
func (c Customer) CustomerName() string {
	return c.Firstname + " " + c.Lastname
}

// CustomerName имя и фамилия плательщика
func (p PaymentConfirmation) CustomerName() string {
	return p.CustomerFirstName + " " + p.CustomerLastName
}
