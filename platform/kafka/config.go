package kafka

import "time"

// Config общие настройки подключения к Kafka для всех сервисов
type Config struct {
	// Brokers список брокеров через запятую:
	//   - локально (go run): localhost:19092
	//   - в docker: kafka:9092
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	// WriteTimeout таймаут записи одного сообщения продюсером
	WriteTimeout time.Duration `env:"KAFKA_WRITE_TIMEOUT"`
	// MaxWait сколько reader ждёт новых сообщений в одном fetch
	MaxWait time.Duration `env:"KAFKA_MAX_WAIT"`
}

// DefaultConfig конфигурация для локальной разработки
func DefaultConfig() Config {
	return Config{
		Brokers:      []string{"localhost:19092"},
		WriteTimeout: 10 * time.Second,
		MaxWait:      time.Second,
	}
}
