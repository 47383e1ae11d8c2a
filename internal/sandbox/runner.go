// Package sandbox runs submitted code snippets in a subprocess under a
// bounded timeout. It is a plain shell-out, not an isolation boundary.
package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Result holds the outcome of one snippet execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// Runner executes snippets with a fixed interpreter and timeout.
type Runner struct {
	interpreter string
	timeout     time.Duration
}

// NewRunner creates a Runner. interpreter is the executable invoked with
// the snippet file as its single argument (e.g. "python3").
func NewRunner(interpreter string, timeout time.Duration) *Runner {
	return &Runner{
		interpreter: interpreter,
		timeout:     timeout,
	}
}

// Run writes code to a temporary file and executes it. The subprocess is
// killed once the timeout elapses; that case is reported via
// Result.TimedOut rather than an error.
func (r *Runner) Run(ctx context.Context, code string) (*Result, error) {
	if code == "" {
		return nil, fmt.Errorf("code cannot be empty")
	}

	tmp, err := os.CreateTemp("", "codequest-*.py")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.WriteString(code); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write snippet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close snippet file: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.interpreter, tmp.Name())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		return result, nil
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// Interpreter missing or not startable
		return nil, fmt.Errorf("failed to run snippet: %w", err)
	}

	return result, nil
}
