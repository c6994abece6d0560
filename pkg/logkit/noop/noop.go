package noop

import (
	"context"

	"github.com/JailtonJunior94/logkit-go/pkg/logkit"
)

// Logger is a no-op implementation of logkit.Logger with zero runtime
// overhead. Use it when logging is disabled completely.
type Logger struct{}

// NewLogger creates a new no-op logger.
func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Debug(ctx context.Context, msg string, md logkit.Metadata) error { return nil }
func (l *Logger) Info(ctx context.Context, msg string, md logkit.Metadata) error  { return nil }
func (l *Logger) Warn(ctx context.Context, msg string, md logkit.Metadata) error  { return nil }
func (l *Logger) Error(ctx context.Context, msg string, md logkit.Metadata) error { return nil }
func (l *Logger) Log(ctx context.Context, level logkit.Level, msg string, md logkit.Metadata) error {
	return nil
}
