package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config описывает, как собрать logger для сервиса
type Config struct {
	// ServiceName имя сервиса (order/notification/payment)
	ServiceName string
	// Env окружение (local/docker)
	Env string
	// Level уровень логирования (debug/info/warn/error), по умолчанию "info"
	Level string
	// Format "json" или "console"; по умолчанию json в docker, console локально
	Format string
	// AddCaller добавлять file:line; локально включён всегда
	AddCaller bool
}

// New создаёт zap.Logger. К каждой записи добавляются поля service и env.
func New(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	format := cfg.Format
	if format == "" {
		format = "console"
		if cfg.Env == "docker" {
			format = "json"
		}
	}
	if format != "json" && format != "console" {
		return nil, fmt.Errorf("invalid log format: %s (must be json/console)", format)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)

	var opts []zap.Option
	if cfg.AddCaller || cfg.Env == "local" {
		opts = append(opts, zap.AddCaller())
	}
	// ошибки уровня error и выше пишем со стеком только локально
	if cfg.Env == "local" {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return zap.New(core, opts...).With(
		zap.String("service", cfg.ServiceName),
		zap.String("env", cfg.Env),
	), nil
}

// ParseLevel переводит строковый уровень в zapcore.Level. Пустая строка означает info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s (must be debug/info/warn/error)", s)
	}
}

// Sync сбрасывает буфер логгера. Ошибку игнорируем: на некоторых системах
// sync /dev/stderr возвращает "invalid argument".
func Sync(log *zap.Logger) {
	_ = log.Sync()
}
