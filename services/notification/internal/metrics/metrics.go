// Package metrics доменные метрики Notification Service
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Результат отправки письма
const (
	ResultSent         = "sent"
	ResultRenderFailed = "render_failed"
	ResultSendFailed   = "send_failed"
)

var (
	notificationsPersistedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_persisted_total",
		Help: "Total number of notifications stored",
	}, []string{"type"})

	emailsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "emails_sent_total",
		Help: "Email dispatch attempts by template and result",
	}, []string{"template", "result"})

	messagesDeadLetteredTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_messages_dead_lettered_total",
		Help: "Messages moved to the dead letter topic",
	}, []string{"topic"})

	handleRetriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_handle_retries_total",
		Help: "Retries of message handling",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(notificationsPersistedTotal, emailsTotal, messagesDeadLetteredTotal, handleRetriesTotal)
}

// RecordPersisted увеличивает счётчик сохранённых уведомлений
func RecordPersisted(notificationType string) {
	notificationsPersistedTotal.WithLabelValues(notificationType).Inc()
}

// RecordEmail фиксирует результат отправки письма
func RecordEmail(template, result string) {
	emailsTotal.WithLabelValues(template, result).Inc()
}

// RecordDeadLettered сообщение из topic ушло в DLQ
func RecordDeadLettered(topic string) {
	messagesDeadLetteredTotal.WithLabelValues(topic).Inc()
}

// RecordRetry повторная попытка обработки сообщения из topic
func RecordRetry(topic string) {
	handleRetriesTotal.WithLabelValues(topic).Inc()
}
