package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TraceFields возвращает поля trace_id и span_id, если в ctx есть валидный span.
func TraceFields(ctx context.Context) []zap.Field {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}

// L возвращает base, дополненный trace_id/span_id из ctx и полями HTTP запроса.
// Поля, добавленные к base через With, сохраняются.
func L(ctx context.Context, base *zap.Logger) *zap.Logger {
	fields := append(TraceFields(ctx), RequestFields(ctx)...)
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}
