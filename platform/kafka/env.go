package kafka

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// LoadEnv заполняет cfg из переменных окружения (KAFKA_BROKERS, KAFKA_WRITE_TIMEOUT, KAFKA_MAX_WAIT).
// Незаданные переменные оставляют текущие значения cfg.
func LoadEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse kafka env: %w", err)
	}
	return nil
}
