package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestL_KeepsBaseFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core).With(zap.String("component", "publisher"))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))
	ctx = withRequestFields(ctx, zap.String("http_method", http.MethodPost))

	L(ctx, base).Info("hello")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "publisher", fields["component"])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
	assert.Equal(t, http.MethodPost, fields["http_method"])
}

func TestL_WithoutContextReturnsBase(t *testing.T) {
	base := zap.NewNop()
	assert.Same(t, base, L(context.Background(), base))
}

func TestHTTPMiddleware_HandlerLoggerKeepsComponentFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	component := zap.New(core).With(zap.String("component", "handler"))

	h := HTTPMiddleware("test", zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		L(r.Context(), component).Info("handled")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "handler", fields["component"])
	assert.Equal(t, "/api/v1/orders", fields["http_path"])
}
