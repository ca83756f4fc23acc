package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// HTTPMiddleware создаёт server span на каждый запрос, продолжая trace из входящих заголовков,
// и кладёт в контекст запроса поля http_method/http_path для L.
// После обработки span переименовывается по шаблону маршрута chi (например /api/v1/orders/{order-id}).
// Ответы 5xx логируются через logger.
func HTTPMiddleware(serviceName string, logger *zap.Logger) func(http.Handler) http.Handler {
	tracer := otel.Tracer(serviceName)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			ctx = withRequestFields(ctx,
				zap.String("http_method", r.Method),
				zap.String("http_path", r.URL.Path),
			)
			start := time.Now()

			sw := NewStatusWriter(w)
			next.ServeHTTP(sw, r.WithContext(ctx))

			if rc := chi.RouteContext(ctx); rc != nil {
				if pattern := rc.RoutePattern(); pattern != "" {
					span.SetName("HTTP " + r.Method + " " + pattern)
					span.SetAttributes(attribute.String("http.route", pattern))
				}
			}
			span.SetAttributes(attribute.Int("http.status_code", sw.Status()))
			if sw.Status() >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, strconv.Itoa(sw.Status()))
				L(ctx, logger).Warn("request finished with server error",
					zap.Int("status", sw.Status()),
					zap.Duration("duration", time.Since(start)))
			}
		})
	}
}

// InjectHTTP кладёт trace context из ctx в заголовки исходящего запроса
func InjectHTTP(ctx context.Context, header http.Header) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(header))
}

// StatusWriter запоминает код ответа, записанный обработчиком
type StatusWriter struct {
	http.ResponseWriter
	status int
}

// NewStatusWriter оборачивает w; код по умолчанию 200
func NewStatusWriter(w http.ResponseWriter) *StatusWriter {
	return &StatusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *StatusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Status возвращает записанный код ответа
func (w *StatusWriter) Status() int {
	return w.status
}

type ctxKeyRequestFields struct{}

func withRequestFields(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, ctxKeyRequestFields{}, fields)
}

// RequestFields возвращает поля запроса, положенные HTTPMiddleware, иначе nil
func RequestFields(ctx context.Context) []zap.Field {
	if f, ok := ctx.Value(ctxKeyRequestFields{}).([]zap.Field); ok {
		return f
	}
	return nil
}
