package logkit

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when a record cannot be serialized to the wire
	// format. The record is not written, not even partially.
	ErrFormat = errors.New("logkit: record could not be serialized")

	// ErrContractViolation is returned when a log call is missing mandatory
	// metadata. The call is rejected rather than emitting a malformed record.
	ErrContractViolation = errors.New("logkit: metadata contract violation")

	// ErrWrite is returned when the sink rejects a formatted line. The core
	// never retries; retry policy belongs to the sink implementation.
	ErrWrite = errors.New("logkit: sink write failed")

	// ErrMissingTraceID indicates the metadata envelope has no trace_id.
	ErrMissingTraceID = errors.New("logkit: trace_id is required")

	// ErrInvalidStack indicates the metadata envelope carries a stack tag
	// outside the closed set of origin tags.
	ErrInvalidStack = errors.New("logkit: invalid stack tag")

	// ErrNilSink is returned by New when the configured sink is nil.
	ErrNilSink = errors.New("logkit: sink is required")
)

// FormatError wraps a serialization failure with its underlying cause.
type FormatError struct {
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %v", ErrFormat, e.Err)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the ErrFormat sentinel.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// ContractError reports which mandatory metadata field violated the call
// contract.
type ContractError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("%v: field %q: %v", ErrContractViolation, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the ErrContractViolation sentinel.
func (e *ContractError) Is(target error) bool {
	return target == ErrContractViolation
}

// WriteError wraps a sink write failure with its underlying cause.
type WriteError struct {
	Err error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: %v", ErrWrite, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the ErrWrite sentinel.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// IsFormatError checks if the error is a serialization failure.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsContractViolation checks if the error is a metadata contract violation.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrContractViolation)
}

// IsWriteError checks if the error is a sink write failure.
func IsWriteError(err error) bool {
	return errors.Is(err, ErrWrite)
}
