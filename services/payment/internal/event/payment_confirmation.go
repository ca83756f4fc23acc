// Package event схемы событий, которые Payment Service публикует в шину
package event

const (
	// PaymentConfirmationType значение заголовка event-type
	PaymentConfirmationType = "payment.confirmation"
	// PaymentConfirmationVersion значение заголовка event-version
	PaymentConfirmationVersion = 1
)

// Заголовки Kafka-сообщений
const (
	HeaderEventID      = "event-id"
	HeaderEventType    = "event-type"
	HeaderEventVersion = "event-version"
)

// PaymentConfirmation v1: платёж по заказу проведён
type PaymentConfirmation struct {
	OrderReference    string  `json:"orderReference"`
	Amount            float64 `json:"amount"`
	PaymentMethod     string  `json:"paymentMethod"`
	CustomerFirstName string  `json:"customerFirstName"`
	CustomerLastName  string  `json:"customerLastName"`
	CustomerEmail     string  `json:"customerEmail"`
}
