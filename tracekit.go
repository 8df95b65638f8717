// Package tracekit composes pre-built OpenTelemetry instrumentation into a
// single setup call. Setup validates configuration, attaches resource
// metadata, wires a batching OTLP export pipeline with a bounded number of
// in-flight export requests, registers composite context propagators and
// returns a handle exposing per-protocol instrumentation adapters. Shutdown
// flushes and releases the pipeline.
package tracekit

import (
	"context"
	"sync"

	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/tracekit/tracekit/internal/export"
)

// Context owns one configured tracer provider and the instrumentation
// adapters built from it. It is returned by Setup and required to shut the
// pipeline down.
type Context struct {
	cfg        Config
	provider   *sdktrace.TracerProvider
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	logger     *zap.Logger
	caps       map[Capability]bool
}

// The active handle backs the package-level Shutdown. Exactly one provider
// is expected per process, matching the SDK's own global registration model.
var (
	activeMu sync.Mutex
	active   *Context
)

// Setup validates cfg, builds the export pipeline and instrumentation
// adapters, registers the provider and propagators globally and stores the
// process-wide handle used by the package-level Shutdown.
//
// Calling Setup again replaces the stored handle without shutting the
// previous provider down; call Shutdown first if buffered spans must flush.
func Setup(ctx context.Context, cfg Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.logger()

	res, err := buildResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	exporter, err := buildExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Queue depth and batch size stay at the SDK defaults; only the number
	// of simultaneous export requests is bounded here.
	limited := export.Limit(exporter, int64(cfg.concurrencyLimit()))

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(limited),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
		b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagator)

	tc := &Context{
		cfg:        cfg,
		provider:   provider,
		tracer:     provider.Tracer(cfg.ServiceName),
		propagator: propagator,
		logger:     logger,
		caps:       buildCapabilities(cfg),
	}

	activeMu.Lock()
	active = tc
	activeMu.Unlock()

	logger.Info("tracing configured",
		zap.String("service", cfg.ServiceName),
		zap.Int("export_concurrency", cfg.concurrencyLimit()),
	)
	return tc, nil
}

// Shutdown flushes and releases the provider stored by Setup. When tracing
// was never set up it logs a warning and returns nil; repeated calls are
// no-ops. The stored handle is cleared before any error is reported.
func Shutdown(ctx context.Context) error {
	activeMu.Lock()
	tc := active
	active = nil
	activeMu.Unlock()

	if tc == nil {
		zap.L().Warn("tracing shutdown requested but tracing was never set up")
		return nil
	}
	return tc.Shutdown(ctx)
}

// Shutdown flushes all buffered spans and shuts the provider down, honoring
// the context deadline. Spans created before the call are included in the
// final flush attempt. Failures are returned as a *ShutdownError.
func (tc *Context) Shutdown(ctx context.Context) error {
	if err := tc.provider.Shutdown(ctx); err != nil {
		tc.logger.Warn("tracing shutdown failed", zap.Error(err))
		return &ShutdownError{Err: err}
	}
	tc.logger.Info("tracing shut down")
	return nil
}

// Tracer returns the tracer bound to the configured service name.
func (tc *Context) Tracer() trace.Tracer {
	return tc.tracer
}

// TracerProvider exposes the underlying provider for integrations that
// accept one directly.
func (tc *Context) TracerProvider() trace.TracerProvider {
	return tc.provider
}

// Propagator returns the composite propagator registered by Setup.
func (tc *Context) Propagator() propagation.TextMapPropagator {
	return tc.propagator
}

// Enabled reports whether the capability was attached at setup time.
func (tc *Context) Enabled(c Capability) bool {
	return tc.caps[c]
}

// buildResource merges explicit config fields with detected host, OS,
// process and container attributes. Detectors run first so explicit fields
// take precedence on conflict.
func buildResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(cfg.ServiceName)}
	if cfg.Hostname != "" {
		attrs = append(attrs, semconv.HostName(cfg.Hostname))
	}
	return resource.New(ctx,
		resource.WithHost(),
		resource.WithOS(),
		resource.WithProcess(),
		resource.WithContainer(),
		resource.WithAttributes(attrs...),
	)
}

func buildExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	if cfg.ExporterProtocol == ProtocolHTTP {
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.CollectorURL))
	}
	return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpointURL(cfg.CollectorURL))
}
