package tracekit

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
)

// InstrumentAWS appends tracing middleware to an AWS SDK v2 config so every
// service call produces a client span with the standard aws.* attributes.
func (tc *Context) InstrumentAWS(cfg *aws.Config) {
	otelaws.AppendMiddlewares(&cfg.APIOptions,
		otelaws.WithTracerProvider(tc.provider),
		otelaws.WithTextMapPropagator(tc.propagator),
	)
}
