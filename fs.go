package tracekit

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// FS wraps basic file operations, creating a span per call when the
// filesystem capability is enabled. I/O failures are recorded on the span
// and returned to the caller.
type FS struct {
	tracer  trace.Tracer
	enabled bool
}

// FS returns the filesystem instrumentation adapter. When the capability is
// disabled the operations still run but produce no spans.
func (tc *Context) FS() *FS {
	return &FS{tracer: tc.tracer, enabled: tc.Enabled(CapabilityFilesystem)}
}

// ReadFile reads the named file, recording the path and bytes read.
func (f *FS) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if !f.enabled {
		return os.ReadFile(name)
	}
	_, span := f.tracer.Start(ctx, "fs.read",
		trace.WithAttributes(attribute.String("file.path", name)),
	)
	defer span.End()

	data, err := os.ReadFile(name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("file.size", len(data)))
	return data, nil
}

// WriteFile writes data to the named file, recording the path and size.
func (f *FS) WriteFile(ctx context.Context, name string, data []byte, perm os.FileMode) error {
	if !f.enabled {
		return os.WriteFile(name, data, perm)
	}
	_, span := f.tracer.Start(ctx, "fs.write",
		trace.WithAttributes(
			attribute.String("file.path", name),
			attribute.Int("file.size", len(data)),
		),
	)
	defer span.End()

	if err := os.WriteFile(name, data, perm); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
