package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func attrMap(kvs []attribute.KeyValue) map[string]string {
	m := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value.Emit()
	}
	return m
}

func TestHandleSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := StartHandle(context.Background(), tp.Tracer(InstrumentationName), "h1", "sess", 2)
	RecordStep(span, "network", "alert+retry", "retried")
	Finish(span, "retried", false)
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, "recovery.handle", s.Name())

	attrs := attrMap(s.Attributes())
	assert.Equal(t, "h1", attrs[attrHandleID])
	assert.Equal(t, "sess", attrs[attrSessionID])
	assert.Equal(t, "2", attrs[attrDetailCount])
	assert.Equal(t, "retried", attrs[attrResult])

	require.Len(t, s.Events(), 1)
	ev := attrMap(s.Events()[0].Attributes)
	assert.Equal(t, "network", ev[attrCode])
	assert.Equal(t, "alert+retry", ev[attrAction])
	assert.Equal(t, codes.Unset, s.Status().Code)
}

func TestFinish_Aborted(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := StartHandle(context.Background(), tp.Tracer(InstrumentationName), "h2", "", 0)
	Finish(span, "none", true)
	span.End()

	s := rec.Ended()[0]
	assert.Equal(t, codes.Error, s.Status().Code)
	_, hasSession := attrMap(s.Attributes())[attrSessionID]
	assert.False(t, hasSession)
}
