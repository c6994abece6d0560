// Package zapbridge routes zap-instrumented code through a logkit.Logger,
// so applications already using zap emit lines in the aggregation schema
// without touching their call sites.
package zapbridge

import (
	"context"

	"github.com/JailtonJunior94/logkit-go/pkg/logkit"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Core is a zapcore.Core that forwards every entry to a logkit.Logger.
// Fields become the metadata Extra mapping; a trace_id field is promoted to
// the mandatory TraceID, and a fresh id is generated when the entry carries
// none. The stack tag is fixed per bridge, since zap call sites predate the
// envelope contract.
type Core struct {
	logger logkit.Logger
	stack  logkit.Stack
	fields []zapcore.Field
}

// NewCore creates a bridge core tagging every entry with the given stack.
func NewCore(logger logkit.Logger, stack logkit.Stack) *Core {
	return &Core{
		logger: logger,
		stack:  stack,
	}
}

// New creates a ready-to-use *zap.Logger backed by the bridge.
func New(logger logkit.Logger, stack logkit.Stack) *zap.Logger {
	return zap.New(NewCore(logger, stack))
}

// Enabled always accepts; threshold filtering belongs to the facade's own
// dispatch, not to zap.
func (c *Core) Enabled(zapcore.Level) bool {
	return true
}

// With returns a child core carrying the accumulated fields.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := &Core{
		logger: c.logger,
		stack:  c.stack,
		fields: make([]zapcore.Field, 0, len(c.fields)+len(fields)),
	}
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return clone
}

// Check implements zapcore.Core.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry into a facade log call.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	md := logkit.Metadata{
		Stack: c.stack,
		Extra: enc.Fields,
	}

	if trace, ok := enc.Fields["trace_id"].(string); ok && trace != "" {
		md.TraceID = trace
		delete(enc.Fields, "trace_id")
	} else {
		md.TraceID = logkit.NewTraceID()
	}

	return c.logger.Log(context.Background(), levelName(ent.Level), ent.Message, md)
}

// Sync implements zapcore.Core. The facade writes synchronously, so there
// is nothing to flush.
func (c *Core) Sync() error {
	return nil
}

// levelName maps zap severities onto the facade's level names. Everything
// at DPanic and above collapses to error.
func levelName(level zapcore.Level) logkit.Level {
	switch level {
	case zapcore.DebugLevel:
		return logkit.LevelDebug
	case zapcore.InfoLevel:
		return logkit.LevelInfo
	case zapcore.WarnLevel:
		return logkit.LevelWarn
	default:
		return logkit.LevelError
	}
}
