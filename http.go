package tracekit

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/tracekit/tracekit/internal/peerservice"
)

// ignoredPathPrefixes lists inbound paths excluded from span creation so
// liveness and readiness probes do not pollute traces.
var ignoredPathPrefixes = []string{"/metrics", "/healthz"}

// TraceableRequest reports whether an inbound request should produce a span.
// /metrics and /healthz are excluded along with their sub-paths; longer
// first segments such as /api/health are not.
func TraceableRequest(r *http.Request) bool {
	return !ignoredPath(r.URL.Path)
}

func ignoredPath(path string) bool {
	for _, prefix := range ignoredPathPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// HTTPHandler wraps h with inbound request tracing under the given operation
// name. Health-check and metrics paths are filtered before span creation.
func (tc *Context) HTTPHandler(h http.Handler, operation string) http.Handler {
	return otelhttp.NewHandler(h, operation,
		otelhttp.WithTracerProvider(tc.provider),
		otelhttp.WithPropagators(tc.propagator),
		otelhttp.WithFilter(TraceableRequest),
	)
}

// HTTPTransport wraps base with outbound request tracing. Client spans carry
// a peer.service attribute inferred from the destination host.
func (tc *Context) HTTPTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return otelhttp.NewTransport(&peerServiceTransport{base: base},
		otelhttp.WithTracerProvider(tc.provider),
		otelhttp.WithPropagators(tc.propagator),
	)
}

// peerServiceTransport runs inside the otelhttp transport, so the request
// context already carries the client span when RoundTrip is called.
type peerServiceTransport struct {
	base http.RoundTripper
}

func (t *peerServiceTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	host := req.Host
	if host == "" {
		host = req.URL.Host
	}
	if peer := peerservice.Infer(host, req.URL.String()); peer != "" {
		trace.SpanFromContext(req.Context()).SetAttributes(semconv.PeerService(peer))
	}
	return t.base.RoundTrip(req)
}
