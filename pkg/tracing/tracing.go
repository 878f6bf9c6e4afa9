package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer used by the recovery engine.
const InstrumentationName = "github.com/Goden-Gun/payment-recovery"

const (
	attrHandleID    = "recovery.handle_id"
	attrSessionID   = "recovery.session_id"
	attrDetailCount = "recovery.detail_count"
	attrCode        = "recovery.error_code"
	attrAction      = "recovery.action"
	attrChoice      = "recovery.choice"
	attrResult      = "recovery.result"
)

// Tracer returns named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// StartHandle opens the span covering one recovery cycle.
func StartHandle(ctx context.Context, tracer trace.Tracer, handleID, sessionID string, detailCount int) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = Tracer(InstrumentationName)
	}
	attrs := []attribute.KeyValue{
		attribute.String(attrHandleID, handleID),
		attribute.Int(attrDetailCount, detailCount),
	}
	if sessionID != "" {
		attrs = append(attrs, attribute.String(attrSessionID, sessionID))
	}
	return tracer.Start(ctx, "recovery.handle", trace.WithAttributes(attrs...))
}

// RecordStep adds one processed detail as a span event.
func RecordStep(span trace.Span, code, action, choice string) {
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent("recovery.step", trace.WithAttributes(
		attribute.String(attrCode, code),
		attribute.String(attrAction, action),
		attribute.String(attrChoice, choice),
	))
}

// Finish stamps the result. An aborted cycle marks the span as errored.
func Finish(span trace.Span, result string, aborted bool) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.String(attrResult, result))
	if aborted {
		span.SetStatus(codes.Error, "recovery aborted")
	}
}
