package logkit

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures optional logger collaborators. Host identity, process
// id, and the clock are injectable so tests and exotic runtimes can pin
// them; production code normally relies on the defaults.
type Option func(*logger)

// WithSink replaces the default stdout sink.
func WithSink(sink Sink) Option {
	return func(l *logger) {
		l.sink = sink
	}
}

// WithHostname overrides the hostname written to every record.
func WithHostname(hostname string) Option {
	return func(l *logger) {
		l.hostname = hostname
	}
}

// WithPID overrides the process id written to every record.
func WithPID(pid int) Option {
	return func(l *logger) {
		l.pid = pid
	}
}

// WithClock overrides the timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(l *logger) {
		l.clock = clock
	}
}

// WithMetrics registers emission counters with the given registerer and
// attaches them to the logger.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(l *logger) {
		l.metrics = newEmissionMetrics(reg)
	}
}

// logger is the single concrete Logger. It holds only immutable
// configuration plus the mutex guarding the shared sink, so one value is
// safe for concurrent use from any number of goroutines.
type logger struct {
	name     string
	minLevel Level
	enc      encoder
	hostname string
	pid      int
	clock    func() time.Time
	metrics  *emissionMetrics

	// mu serializes the serialize-then-write step so concurrent calls never
	// interleave within a single output line.
	mu   sync.Mutex
	sink Sink
}

// New creates a Logger from the given configuration. The service label,
// threshold, and presentation mode are fixed for the lifetime of the value;
// there is no package-level global logger.
func New(cfg Config, opts ...Option) (Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &logger{
		name:     cfg.ServiceName,
		minLevel: cfg.MinLevel,
		sink:     NewStdoutSink(),
		hostname: "unknown",
		pid:      os.Getpid(),
		clock:    time.Now,
	}

	if host, err := os.Hostname(); err == nil {
		l.hostname = host
	}

	switch cfg.Mode {
	case ModeConsole:
		l.enc = &consoleEncoder{color: !cfg.DisableColor}
	default:
		l.enc = jsonEncoder{}
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.sink == nil {
		return nil, ErrNilSink
	}

	return l, nil
}

// Debug logs a debug-level message.
func (l *logger) Debug(ctx context.Context, msg string, md Metadata) error {
	return l.Log(ctx, LevelDebug, msg, md)
}

// Info logs an info-level message.
func (l *logger) Info(ctx context.Context, msg string, md Metadata) error {
	return l.Log(ctx, LevelInfo, msg, md)
}

// Warn logs a warning-level message.
func (l *logger) Warn(ctx context.Context, msg string, md Metadata) error {
	return l.Log(ctx, LevelWarn, msg, md)
}

// Error logs an error-level message.
func (l *logger) Error(ctx context.Context, msg string, md Metadata) error {
	return l.Log(ctx, LevelError, msg, md)
}

// Log validates the envelope, assembles the record, and hands exactly one
// line to the sink. Calls below the threshold return nil with zero
// formatting cost.
func (l *logger) Log(_ context.Context, level Level, msg string, md Metadata) error {
	if !level.enabled(l.minLevel) {
		l.metrics.recordDropped(level)
		return nil
	}

	if err := md.Validate(); err != nil {
		l.metrics.recordFailure(failureContract)
		return err
	}

	rec := Record{
		Name:     l.name,
		Hostname: l.hostname,
		PID:      l.pid,
		Level:    SeverityCode(level),
		Msg:      msg,
		Time:     l.clock().UTC().Format(time.RFC3339Nano),
		MetaData: md.fields(),
	}

	line, err := l.enc.encode(level, rec, md)
	if err != nil {
		l.metrics.recordFailure(failureFormat)
		return err
	}

	l.mu.Lock()
	err = l.sink.WriteLine(line)
	l.mu.Unlock()

	if err != nil {
		l.metrics.recordFailure(failureWrite)
		return err
	}

	l.metrics.recordEmitted(level)
	return nil
}
