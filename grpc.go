package tracekit

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

// GRPCServerOption returns the server option attaching inbound RPC tracing.
func (tc *Context) GRPCServerOption() grpc.ServerOption {
	return grpc.StatsHandler(otelgrpc.NewServerHandler(
		otelgrpc.WithTracerProvider(tc.provider),
		otelgrpc.WithPropagators(tc.propagator),
	))
}

// GRPCDialOption returns the dial option so every outbound call propagates
// trace context automatically.
func (tc *Context) GRPCDialOption() grpc.DialOption {
	return grpc.WithStatsHandler(otelgrpc.NewClientHandler(
		otelgrpc.WithTracerProvider(tc.provider),
		otelgrpc.WithPropagators(tc.propagator),
	))
}
