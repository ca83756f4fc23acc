package config

import (
	"testing"
	"time"
)

func TestLoad_LocalDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "local")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AppEnv != EnvLocal {
		t.Errorf("Expected AppEnv=local, got %s", cfg.AppEnv)
	}
	if cfg.HTTPAddr != "127.0.0.1:8060" {
		t.Errorf("Expected HTTPAddr=127.0.0.1:8060, got %s", cfg.HTTPAddr)
	}
	if cfg.PaymentTopic != "payment-topic" {
		t.Errorf("Expected PaymentTopic=payment-topic, got %s", cfg.PaymentTopic)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("Expected ShutdownTimeout=5s, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_DockerDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "docker")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.HTTPAddr != "0.0.0.0:8060" {
		t.Errorf("Expected HTTPAddr=0.0.0.0:8060, got %s", cfg.HTTPAddr)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "kafka:9092" {
		t.Errorf("Expected Kafka.Brokers=[kafka:9092], got %v", cfg.Kafka.Brokers)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("APP_ENV", "docker")
	t.Setenv("HTTP_ADDR", "0.0.0.0:9999")
	t.Setenv("SHUTDOWN_TIMEOUT", "15s")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.HTTPAddr != "0.0.0.0:9999" {
		t.Errorf("Expected HTTPAddr=0.0.0.0:9999, got %s", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("Expected ShutdownTimeout=15s, got %v", cfg.ShutdownTimeout)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Errorf("Expected 2 brokers, got %v", cfg.Kafka.Brokers)
	}
}

func TestLoad_InvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for invalid APP_ENV, got nil")
	}
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "invalid")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for invalid SHUTDOWN_TIMEOUT, got nil")
	}
}
