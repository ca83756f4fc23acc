package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"go.uber.org/zap"

	platformkafka "github.com/shestoi/GoCommerce/platform/kafka"
	"github.com/shestoi/GoCommerce/platform/observability"
)

// Env окружение приложения
type Env string

const (
	// EnvLocal запуск на хосте (go run)
	EnvLocal Env = "local"
	// EnvDocker запуск в docker compose
	EnvDocker Env = "docker"
)

// Config конфигурация Payment Service
type Config struct {
	AppEnv    Env    `env:"APP_ENV" envDefault:"local"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTPAddr        string        `env:"HTTP_ADDR"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	PaymentTopic string `env:"PAYMENT_TOPIC" envDefault:"payment-topic"`

	Kafka         platformkafka.Config
	Observability observability.Config
}

// Load читает конфигурацию из окружения и подставляет дефолты для APP_ENV
func Load() (Config, error) {
	cfg := Config{Kafka: platformkafka.DefaultConfig()}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.AppEnv != EnvLocal && cfg.AppEnv != EnvDocker {
		return Config{}, fmt.Errorf("invalid APP_ENV: %s (must be 'local' or 'docker')", cfg.AppEnv)
	}

	if cfg.HTTPAddr == "" {
		if cfg.AppEnv == EnvLocal {
			cfg.HTTPAddr = "127.0.0.1:8060"
		} else {
			cfg.HTTPAddr = "0.0.0.0:8060"
		}
	}
	if cfg.AppEnv == EnvDocker && len(cfg.Kafka.Brokers) == 1 && cfg.Kafka.Brokers[0] == platformkafka.DefaultConfig().Brokers[0] {
		cfg.Kafka.Brokers = []string{"kafka:9092"}
	}
	cfg.Observability.ServiceName = "payment"
	cfg.Observability.DeploymentEnvironment = string(cfg.AppEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}
	if c.PaymentTopic == "" {
		return fmt.Errorf("PAYMENT_TOPIC is required")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Log выводит конфигурацию в лог
func (c Config) Log(logger *zap.Logger) {
	logger.Info("config loaded",
		zap.String("app_env", string(c.AppEnv)),
		zap.String("http_addr", c.HTTPAddr),
		zap.Strings("kafka_brokers", c.Kafka.Brokers),
		zap.String("payment_topic", c.PaymentTopic),
		zap.Bool("otel_enabled", c.Observability.Enabled),
		zap.Duration("shutdown_timeout", c.ShutdownTimeout),
	)
}
