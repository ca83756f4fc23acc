// Package metrics доменные метрики Payment Service
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	paymentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_processed_total",
		Help: "Payment requests by outcome: created, duplicate",
	}, []string{"outcome"})

	publishFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payment_confirmation_publish_failures_total",
		Help: "Payment confirmations that could not be published",
	})
)

func init() {
	prometheus.MustRegister(paymentsTotal, publishFailuresTotal)
}

// RecordPayment outcome: created или duplicate
func RecordPayment(outcome string) {
	paymentsTotal.WithLabelValues(outcome).Inc()
}

// RecordPublishFailure увеличивает счётчик неопубликованных подтверждений
func RecordPublishFailure() {
	publishFailuresTotal.Inc()
}
