package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreationError(t *testing.T) {
	err := NewCreationError("pool size must be positive, got 0")

	assert.Equal(t, "pool creation failed: pool size must be positive, got 0", err.Error())

	var creationErr *CreationError
	assert.True(t, errors.As(error(err), &creationErr))
	assert.Equal(t, "pool size must be positive, got 0", creationErr.Reason)
}

func TestSendError(t *testing.T) {
	tests := []struct {
		name     string
		err      *SendError
		sentinel error
	}{
		{
			name:     "pool closed",
			err:      NewSendError("pool has begun shutdown", ErrPoolClosed),
			sentinel: ErrPoolClosed,
		},
		{
			name:     "no live workers",
			err:      NewSendError("every worker has terminated", ErrNoWorkers),
			sentinel: ErrNoWorkers,
		},
		{
			name:     "nil job",
			err:      NewSendError("nil job", ErrNilJob),
			sentinel: ErrNilJob,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.Equal(t, tt.sentinel, errors.Unwrap(tt.err))
			assert.Contains(t, tt.err.Error(), "job dispatch failed")

			var sendErr *SendError
			assert.True(t, errors.As(error(tt.err), &sendErr))
		})
	}
}

func TestSendError_Wrapped(t *testing.T) {
	err := fmt.Errorf("dispatch connection: %w", NewSendError("pool has begun shutdown", ErrPoolClosed))

	assert.True(t, errors.Is(err, ErrPoolClosed))

	var sendErr *SendError
	assert.True(t, errors.As(err, &sendErr))
	assert.Equal(t, "pool has begun shutdown", sendErr.Reason)
}
