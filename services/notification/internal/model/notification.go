// Package model доменные типы Notification Service
package model

import (
	"time"

	"github.com/shestoi/GoCommerce/services/notification/internal/event"
)

// NotificationType вид уведомления. Набор значений закрыт.
type NotificationType string

const (
	OrderConfirmation   NotificationType = "ORDER_CONFIRMATION"
	PaymentConfirmation NotificationType = "PAYMENT_CONFIRMATION"
)

// EmailTemplate шаблон письма и тема
type EmailTemplate struct {
	Name    string
	Subject string
}

// Template возвращает шаблон письма для вида уведомления.
// ok=false для значения вне закрытого набора.
func (t NotificationType) Template() (EmailTemplate, bool) {
	switch t {
	case PaymentConfirmation:
		return EmailTemplate{Name: "payment-confirmation", Subject: "Payment Successfully Processed"}, true
	case OrderConfirmation:
		return EmailTemplate{Name: "order-confirmation", Subject: "Order Confirmation"}, true
	default:
		return EmailTemplate{}, false
	}
}

// Valid сообщает, входит ли значение в закрытый набор
func (t NotificationType) Valid() bool {
	_, ok := t.Template()
	return ok
}

// Notification запись о полученном событии. После создания не меняется.
// Заполнено ровно одно из полей OrderConfirmation / PaymentConfirmation.
type Notification struct {
	ID                  string
	Type                NotificationType
	NotificationDate    time.Time
	OrderConfirmation   *event.OrderConfirmation
	PaymentConfirmation *event.PaymentConfirmation
}
