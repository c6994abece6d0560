package logkit

import (
	"io"
	"os"
)

// Sink is the destination a formatted log line is written to. The core
// depends only on this capability; transport concerns (retries, buffering,
// rotation, shipping) belong to the implementation behind it.
type Sink interface {
	// WriteLine writes one formatted record. The line carries no terminator;
	// implementations append their own.
	WriteLine(line []byte) error
}

// writerSink writes newline-terminated lines to an io.Writer.
type writerSink struct {
	w io.Writer
}

// NewWriterSink returns a sink that writes each record to w as a single
// newline-terminated write. With line-atomic writers such as os.Stdout this
// keeps records whole even without external locking.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

// NewStdoutSink returns a sink writing to the process standard output.
func NewStdoutSink() Sink {
	return NewWriterSink(os.Stdout)
}

func (s *writerSink) WriteLine(line []byte) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	if _, err := s.w.Write(buf); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
