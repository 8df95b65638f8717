// Package export wraps span exporters with a bound on simultaneous
// in-flight export requests.
package export

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/semaphore"
)

// Limit wraps exporter so that at most limit ExportSpans calls run
// concurrently. Calls beyond the limit block until a slot frees or their
// context is done. Queue depth and batch size remain the caller's concern.
func Limit(exporter sdktrace.SpanExporter, limit int64) sdktrace.SpanExporter {
	if limit < 1 {
		limit = 1
	}
	return &limited{exporter: exporter, sem: semaphore.NewWeighted(limit)}
}

type limited struct {
	exporter sdktrace.SpanExporter
	sem      *semaphore.Weighted
}

// ExportSpans forwards to the wrapped exporter once a slot is acquired.
func (l *limited) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer l.sem.Release(1)
	return l.exporter.ExportSpans(ctx, spans)
}

// Shutdown forwards to the wrapped exporter. In-flight exports are the
// wrapped exporter's responsibility to drain.
func (l *limited) Shutdown(ctx context.Context) error {
	return l.exporter.Shutdown(ctx)
}
