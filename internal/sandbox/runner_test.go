package sandbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests use sh as the interpreter so they do not depend on a Python
// installation.

func TestRunner_Run(t *testing.T) {
	r := NewRunner("sh", 5*time.Second)

	result, err := r.Run(context.Background(), "echo hello")
	require.NoError(t, err)

	assert.Equal(t, "hello\n", result.Stdout)
	assert.Empty(t, result.Stderr)
	assert.Equal(t, 0, result.ExitCode)
	assert.False(t, result.TimedOut)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	r := NewRunner("sh", 5*time.Second)

	result, err := r.Run(context.Background(), "echo oops >&2\nexit 3")
	require.NoError(t, err)

	assert.Equal(t, "oops\n", result.Stderr)
	assert.Equal(t, 3, result.ExitCode)
	assert.False(t, result.TimedOut)
}

func TestRunner_Run_Timeout(t *testing.T) {
	r := NewRunner("sh", 100*time.Millisecond)

	result, err := r.Run(context.Background(), "sleep 5")
	require.NoError(t, err)

	assert.True(t, result.TimedOut)
}

func TestRunner_Run_EmptyCode(t *testing.T) {
	r := NewRunner("sh", time.Second)

	_, err := r.Run(context.Background(), "")
	assert.Error(t, err)
}

func TestRunner_Run_MissingInterpreter(t *testing.T) {
	r := NewRunner("definitely-not-an-interpreter", time.Second)

	_, err := r.Run(context.Background(), "echo hello")
	assert.Error(t, err)
}
