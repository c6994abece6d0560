package logkit

import (
	"bytes"
	"encoding/json"
)

// encoder turns one record into the bytes handed to the sink, without the
// line terminator. The presentation mode is fixed at construction.
type encoder interface {
	encode(level Level, rec Record, md Metadata) ([]byte, error)
}

// jsonEncoder produces strict single-line JSON for machine ingestion.
// encoding/json escapes embedded newlines, so the output is always one line.
type jsonEncoder struct{}

func (jsonEncoder) encode(_ Level, rec Record, _ Metadata) ([]byte, error) {
	line, err := json.Marshal(rec)
	if err != nil {
		// Fail closed: nothing reaches the sink, the stream stays intact.
		return nil, &FormatError{Err: err}
	}
	return line, nil
}

// ANSI color codes for the console presentation.
const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiGray   = "\x1b[90m"
)

// levelColor picks the per-level color. Unrecognized levels stay uncolored.
func levelColor(level Level) string {
	switch level {
	case LevelError:
		return ansiRed
	case LevelWarn:
		return ansiYellow
	case LevelInfo:
		return ansiCyan
	case LevelDebug:
		return ansiGray
	default:
		return ""
	}
}

// consoleEncoder produces a human-oriented "<level>: <message>" line.
// The metadata object is pretty-printed after the message only when the
// call carried extra keys beyond the mandatory pair; otherwise the line
// ends right after the message, with no trailing braces or whitespace.
type consoleEncoder struct {
	color bool
}

func (e *consoleEncoder) encode(level Level, rec Record, md Metadata) ([]byte, error) {
	var buf bytes.Buffer

	color := ""
	if e.color {
		color = levelColor(level)
	}

	if color != "" {
		buf.WriteString(color)
		buf.WriteString(level.String())
		buf.WriteString(ansiReset)
	} else {
		buf.WriteString(level.String())
	}
	buf.WriteString(": ")
	buf.WriteString(rec.Msg)

	if len(md.Extra) > 0 {
		pretty, err := json.MarshalIndent(rec.MetaData, "", "  ")
		if err != nil {
			return nil, &FormatError{Err: err}
		}
		buf.WriteByte(' ')
		buf.Write(pretty)
	}

	return buf.Bytes(), nil
}
