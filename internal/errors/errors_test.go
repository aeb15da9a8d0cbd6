package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "invalid interval", "use a value between 0.1 and 5.0")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Contains(t, err.Error(), "✗ invalid interval")
	assert.Contains(t, err.Error(), "use a value between 0.1 and 5.0")
	assert.Nil(t, err.Unwrap())
}

func TestWrapDefaultsToStream(t *testing.T) {
	cause := stderrors.New("connection reset by peer")
	err := Wrap(cause, "stream read failed")

	assert.Equal(t, ErrStream, err.Code)
	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.True(t, stderrors.Is(err, cause))
}

func TestWrapWithCode(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := WrapWithCode(cause, ErrConnect, "could not reach server", "check that the server is running")

	assert.Equal(t, ErrConnect, err.Code)
	assert.Contains(t, err.Error(), "✗ could not reach server")
	assert.Contains(t, err.Error(), "dial tcp: connection refused")
	assert.Contains(t, err.Error(), "check that the server is running")
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		expected bool
	}{
		{"matching code", New(ErrConnect, "msg", ""), ErrConnect, true},
		{"non-matching code", New(ErrConnect, "msg", ""), ErrConfig, false},
		{"plain error", stderrors.New("plain"), ErrStream, false},
		{"nil error", nil, ErrConfig, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCode(tt.err, tt.code))
		})
	}
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := New(ErrConnect, "connect failed", "")
	outer := Wrap(inner, "outer context")

	// errors.As finds the outermost structured error first
	assert.True(t, IsCode(outer, ErrStream))

	var structured *Error
	require.True(t, stderrors.As(outer, &structured))
	assert.Equal(t, ErrStream, structured.Code)
}
