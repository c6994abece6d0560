package logkit

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// Stack identifies which subsystem originated a log entry.
// It is a closed enumeration; downstream consumers key on it.
type Stack string

// Recognized origin tags.
const (
	StackNode     Stack = "NODE"
	StackGraphQL  Stack = "GRAPHQL"
	StackTemporal Stack = "TEMPORAL"
	StackRedis    Stack = "REDIS"
)

// validStacks holds all recognized origin tags for validation.
var validStacks = map[Stack]bool{
	StackNode:     true,
	StackGraphQL:  true,
	StackTemporal: true,
	StackRedis:    true,
}

// NewStack creates a validated Stack from a string tag.
// Returns ErrInvalidStack if the tag is not recognized.
func NewStack(tag string) (Stack, error) {
	s := Stack(strings.ToUpper(tag))
	if !s.IsValid() {
		return "", ErrInvalidStack
	}
	return s, nil
}

// IsValid checks if the stack tag belongs to the closed set.
func (s Stack) IsValid() bool {
	return validStacks[s]
}

// String returns the stack tag as a string.
func (s Stack) String() string {
	return string(s)
}

// MarshalJSON implements json.Marshaler.
func (s Stack) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Stack) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	stack, err := NewStack(tag)
	if err != nil {
		return err
	}

	*s = stack
	return nil
}

// Metadata is the envelope every log call must carry. TraceID and Stack are
// mandatory; Extra holds arbitrary additional keys spread into the record's
// meta_data object.
type Metadata struct {
	TraceID string
	Stack   Stack
	Extra   map[string]any
}

// Validate checks the mandatory metadata keys. Violations are reported as
// ContractError at the call boundary so a malformed record is never emitted.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.TraceID) == "" {
		return &ContractError{Field: "trace_id", Err: ErrMissingTraceID}
	}
	if !m.Stack.IsValid() {
		return &ContractError{Field: "stack", Err: ErrInvalidStack}
	}
	return nil
}

// fields flattens the envelope into the meta_data mapping. The mandatory
// pair is written last: Extra keys named trace_id or stack never displace it.
func (m Metadata) fields() map[string]any {
	out := make(map[string]any, len(m.Extra)+2)
	for k, v := range m.Extra {
		out[k] = v
	}
	out["trace_id"] = m.TraceID
	out["stack"] = m.Stack.String()
	return out
}

// NewTraceID generates a new correlation identifier for log calls that
// start a trace rather than continue one.
func NewTraceID() string {
	return uuid.NewString()
}
