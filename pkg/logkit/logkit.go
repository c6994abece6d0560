package logkit

import "context"

// Logger provides leveled structured logging against the aggregation schema.
// Every call carries a Metadata envelope with the mandatory trace_id and
// stack tag; calls with an incomplete envelope are rejected, not emitted.
//
// All failures (contract violation, serialization, sink write) surface
// synchronously as the returned error. There is no background error channel
// and no automatic retry.
type Logger interface {
	// Debug logs a debug-level message with the given metadata envelope.
	Debug(ctx context.Context, msg string, md Metadata) error

	// Info logs an info-level message with the given metadata envelope.
	Info(ctx context.Context, msg string, md Metadata) error

	// Warn logs a warning-level message with the given metadata envelope.
	Warn(ctx context.Context, msg string, md Metadata) error

	// Error logs an error-level message with the given metadata envelope.
	Error(ctx context.Context, msg string, md Metadata) error

	// Log logs a message at an arbitrary level. Unrecognized level names are
	// emitted with the level string carried through to the record unchanged.
	Log(ctx context.Context, level Level, msg string, md Metadata) error
}
