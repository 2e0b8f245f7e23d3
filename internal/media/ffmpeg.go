package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for stderr to drain after the process
// was killed.
const waitDelay = 2 * time.Second

// Compile-time check that ExecRunner implements Runner.
var _ Runner = ExecRunner{}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct{}

// Run executes bin with args and returns an error containing the stderr
// output if the command exits with a non-zero status.
func (ExecRunner) Run(ctx context.Context, bin string, args []string) error {
	// #nosec G204 - bin is resolved by the application, args are built from fixed attempts
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.WaitDelay = waitDelay

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return fmt.Errorf("ffmpeg cancelled: %w", ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &FFmpegError{
			Args:   args,
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	return &LaunchError{Path: bin, Err: err}
}

// FFmpegError represents an error from running ffmpeg, including the stderr output.
type FFmpegError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *FFmpegError) Error() string {
	return fmt.Sprintf("ffmpeg error: %v: %s", e.Err, strings.TrimSpace(e.Stderr))
}

func (e *FFmpegError) Unwrap() error {
	return e.Err
}

// LaunchError is returned when the ffmpeg process could not be started at all.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("ffmpeg launch failed: %v (path: %s)", e.Err, e.Path)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
