package tracekit

import "fmt"

// ConfigurationError reports a missing or invalid configuration field. It is
// returned synchronously by Setup before any tracing resource is allocated.
//
// Error messages name the offending field but never echo raw values, so
// credentials embedded in collector URLs cannot leak through logs.
type ConfigurationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e == nil {
		return "tracing configuration error"
	}
	return fmt.Sprintf("tracing configuration: %s %s", e.Field, e.Reason)
}

// ShutdownError wraps a provider flush or shutdown failure. The handle is
// always cleared before this error is returned, so callers can retry process
// shutdown without double-flushing.
type ShutdownError struct {
	Err error
}

// Error implements the error interface.
func (e *ShutdownError) Error() string {
	if e == nil {
		return "tracing shutdown error"
	}
	return fmt.Sprintf("tracing shutdown: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ShutdownError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
