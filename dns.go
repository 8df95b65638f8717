package tracekit

import (
	"context"
	"net"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Resolver performs DNS lookups, creating a span per lookup when the dns
// capability is enabled. Lookup failures are recorded on the span and
// returned to the caller; tracing never interrupts the lookup itself.
type Resolver struct {
	tracer  trace.Tracer
	lookup  lookupFunc
	enabled bool
}

type lookupFunc func(ctx context.Context, host string) ([]string, error)

// Resolver returns the DNS instrumentation adapter. When the capability is
// disabled the resolver still resolves but produces no spans.
func (tc *Context) Resolver() *Resolver {
	return &Resolver{
		tracer:  tc.tracer,
		lookup:  (&net.Resolver{}).LookupHost,
		enabled: tc.Enabled(CapabilityDNS),
	}
}

// LookupHost resolves host, annotating the span with the queried name, the
// answer count and any resolution error.
func (r *Resolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	if !r.enabled {
		return r.lookup(ctx, host)
	}
	ctx, span := r.tracer.Start(ctx, "dns.lookup",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("dns.hostname", host)),
	)
	defer span.End()

	addrs, err := r.lookup(ctx, host)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("dns.answer_count", len(addrs)))
	return addrs, nil
}
