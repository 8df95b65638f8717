package tracekit

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger returns the configured logger enriched with trace_id and span_id
// fields when ctx carries a valid span, so log lines correlate with traces.
// Outside a span the logger is returned unchanged.
func (tc *Context) Logger(ctx context.Context) *zap.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return tc.logger
	}
	return tc.logger.With(
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}
