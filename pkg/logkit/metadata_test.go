package logkit

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStack(t *testing.T) {
	tests := []struct {
		tag      string
		expected Stack
		wantErr  bool
	}{
		{"NODE", StackNode, false},
		{"GRAPHQL", StackGraphQL, false},
		{"TEMPORAL", StackTemporal, false},
		{"REDIS", StackRedis, false},
		{"redis", StackRedis, false},
		{"KAFKA", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			stack, err := NewStack(tt.tag)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStack)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stack)
		})
	}
}

func TestStackUnmarshalJSON_Invalid(t *testing.T) {
	var s Stack
	err := json.Unmarshal([]byte(`"MAINFRAME"`), &s)
	assert.ErrorIs(t, err, ErrInvalidStack)
}

func TestMetadataValidate(t *testing.T) {
	tests := []struct {
		name    string
		md      Metadata
		wantErr error
	}{
		{
			name: "valid envelope",
			md:   Metadata{TraceID: "123", Stack: StackNode},
		},
		{
			name:    "missing trace_id",
			md:      Metadata{Stack: StackNode},
			wantErr: ErrMissingTraceID,
		},
		{
			name:    "blank trace_id",
			md:      Metadata{TraceID: "   ", Stack: StackNode},
			wantErr: ErrMissingTraceID,
		},
		{
			name:    "missing stack",
			md:      Metadata{TraceID: "123"},
			wantErr: ErrInvalidStack,
		},
		{
			name:    "stack outside the closed set",
			md:      Metadata{TraceID: "123", Stack: "KAFKA"},
			wantErr: ErrInvalidStack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.md.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsContractViolation(err))

			var ce *ContractError
			require.True(t, errors.As(err, &ce))
			assert.NotEmpty(t, ce.Field)
		})
	}
}

func TestMetadataFields_MandatoryPairWins(t *testing.T) {
	md := Metadata{
		TraceID: "real-trace",
		Stack:   StackRedis,
		Extra: map[string]any{
			"trace_id": "shadow",
			"stack":    "shadow",
			"user":     "u1",
		},
	}

	fields := md.fields()

	assert.Equal(t, "real-trace", fields["trace_id"])
	assert.Equal(t, "REDIS", fields["stack"])
	assert.Equal(t, "u1", fields["user"])
}

func TestNewTraceID(t *testing.T) {
	id := NewTraceID()

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewTraceID())
}
