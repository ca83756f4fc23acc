package observability

// Config конфигурация OpenTelemetry (traces + metrics + propagator).
// Поля читаются из окружения через caarlos0/env вместе с конфигом сервиса.
type Config struct {
	// Enabled включает экспорт в OTLP collector; иначе ставятся noop providers
	Enabled bool `env:"OTEL_ENABLED" envDefault:"false"`
	// OTLPEndpoint адрес OTLP gRPC, например "127.0.0.1:4317" или "otel-collector:4317"
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"127.0.0.1:4317"`
	// SamplingRatio доля семплируемых трасс (0..1)
	SamplingRatio float64 `env:"OTEL_TRACES_SAMPLER_RATIO" envDefault:"1.0"`
	// ServiceVersion версия сборки, опционально
	ServiceVersion string `env:"SERVICE_VERSION"`

	// ServiceName и DeploymentEnvironment заполняет сервис при сборке приложения
	ServiceName           string
	DeploymentEnvironment string
}
