// Package metrics доменные метрики Order Service
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Шаги оформления заказа, сбой которых не откатывает заказ
const (
	StepPayment = "payment"
	StepPublish = "publish"
)

var (
	ordersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders persisted",
	})

	ordersRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_rejected_total",
		Help: "Total number of order requests rejected before persistence",
	}, []string{"reason"})

	sagaStepFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_saga_step_failures_total",
		Help: "Failures of post-persistence steps that leave the order committed",
	}, []string{"step"})
)

func init() {
	prometheus.MustRegister(ordersCreatedTotal, ordersRejectedTotal, sagaStepFailuresTotal)
}

// RecordOrderCreated увеличивает счётчик сохранённых заказов
func RecordOrderCreated() {
	ordersCreatedTotal.Inc()
}

// RecordOrderRejected reason: validation, customer, products
func RecordOrderRejected(reason string) {
	ordersRejectedTotal.WithLabelValues(reason).Inc()
}

// RecordStepFailure фиксирует сбой шага после фиксации заказа
func RecordStepFailure(step string) {
	sagaStepFailuresTotal.WithLabelValues(step).Inc()
}
