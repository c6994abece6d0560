package fake

import (
	"context"
	"sync"

	"github.com/JailtonJunior94/logkit-go/pkg/logkit"
)

// Sink captures every line written to it so tests can inspect exactly what
// a logger emitted.
type Sink struct {
	mu    sync.Mutex
	lines [][]byte
}

// NewSink creates a new capturing sink.
func NewSink() *Sink {
	return &Sink{
		lines: make([][]byte, 0),
	}
}

// WriteLine stores a copy of the line.
func (s *Sink) WriteLine(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, append([]byte(nil), line...))
	return nil
}

// Lines returns all captured lines (for test assertions).
func (s *Sink) Lines() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([][]byte, len(s.lines))
	copy(result, s.lines)
	return result
}

// Reset clears all captured lines.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make([][]byte, 0)
}

// Entry is one captured log call.
type Entry struct {
	Level    logkit.Level
	Msg      string
	Metadata logkit.Metadata
}

// Logger implements logkit.Logger by capturing calls instead of emitting
// them, so consumer code can assert on what it logged.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLogger creates a new capturing logger.
func NewLogger() *Logger {
	return &Logger{
		entries: make([]Entry, 0),
	}
}

// Debug captures a debug-level call.
func (l *Logger) Debug(ctx context.Context, msg string, md logkit.Metadata) error {
	return l.Log(ctx, logkit.LevelDebug, msg, md)
}

// Info captures an info-level call.
func (l *Logger) Info(ctx context.Context, msg string, md logkit.Metadata) error {
	return l.Log(ctx, logkit.LevelInfo, msg, md)
}

// Warn captures a warn-level call.
func (l *Logger) Warn(ctx context.Context, msg string, md logkit.Metadata) error {
	return l.Log(ctx, logkit.LevelWarn, msg, md)
}

// Error captures an error-level call.
func (l *Logger) Error(ctx context.Context, msg string, md logkit.Metadata) error {
	return l.Log(ctx, logkit.LevelError, msg, md)
}

// Log captures a call at an arbitrary level.
func (l *Logger) Log(_ context.Context, level logkit.Level, msg string, md logkit.Metadata) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Msg: msg, Metadata: md})
	return nil
}

// Entries returns all captured calls (for test assertions).
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	result := make([]Entry, len(l.entries))
	copy(result, l.entries)
	return result
}

// Reset clears all captured calls.
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make([]Entry, 0)
}
