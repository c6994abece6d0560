package logkit

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Mode selects the presentation format. It is resolved once at construction
// and never re-read per call.
type Mode string

const (
	// ModeStructured emits strict single-line JSON for machine ingestion.
	ModeStructured Mode = "structured"

	// ModeConsole emits colorized human-readable lines for interactive use.
	ModeConsole Mode = "console"
)

// Config holds the logger configuration, resolved once at process start.
type Config struct {
	// ServiceName is the immutable service label written to every record.
	ServiceName string

	// MinLevel is the minimum severity that is actually emitted. Calls below
	// it are dropped before any formatting work. An unrecognized name falls
	// back to info.
	MinLevel Level

	// Mode selects structured or console presentation.
	Mode Mode

	// DisableColor suppresses ANSI colors in console mode. Ignored in
	// structured mode.
	DisableColor bool
}

// DefaultConfig returns a new Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ServiceName: "unknown",
		MinLevel:    LevelInfo,
		Mode:        ModeStructured,
	}
}

// ConfigFromEnv resolves the configuration from the process environment:
// SERVICE_NAME, LOG_LEVEL, and LOG_FORMAT=console to prefer human-readable
// output. Unset variables keep the defaults. Environment reading happens
// here only, never per call.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if name := os.Getenv("SERVICE_NAME"); name != "" {
		cfg.ServiceName = name
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.MinLevel = Level(level)
	}
	if format := os.Getenv("LOG_FORMAT"); format == "console" {
		cfg.Mode = ModeConsole
	}

	return cfg
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return errors.New("service name is required")
	}

	switch c.Mode {
	case ModeStructured, ModeConsole:
	default:
		return fmt.Errorf("unknown output mode %q", c.Mode)
	}

	return nil
}
