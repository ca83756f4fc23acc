package observability

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestKafkaHeaderCarrier_SetOverwrites(t *testing.T) {
	var headers []kafka.Header
	c := NewKafkaHeaderCarrier(&headers)

	c.Set("event-type", "a")
	c.Set("event-type", "b")

	require.Len(t, headers, 1)
	assert.Equal(t, "b", c.Get("event-type"))
	assert.Equal(t, []string{"event-type"}, c.Keys())
	assert.Empty(t, c.Get("missing"))
}

func TestInjectExtractKafka_RoundTripsTraceContext(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	msg := kafka.Message{Key: []byte("ref")}
	InjectKafka(ctx, &msg)
	require.NotEmpty(t, msg.Headers)

	got := trace.SpanContextFromContext(ExtractKafka(context.Background(), &msg))
	assert.Equal(t, traceID, got.TraceID())
	assert.Equal(t, spanID, got.SpanID())

	fields := TraceFields(trace.ContextWithSpanContext(context.Background(), got))
	require.Len(t, fields, 2)
	assert.Equal(t, "trace_id", fields[0].Key)
}
