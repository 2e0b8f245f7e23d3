package media

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/maauso/video-thumbnails/internal/metrics"
)

// ErrNoFrameExtracted is reported when there were no attempts to run.
var ErrNoFrameExtracted = errors.New("ffmpeg did not produce a thumbnail")

// DefaultAttemptTimeout bounds a single tool invocation.
const DefaultAttemptTimeout = 30 * time.Second

// ExtractionError is returned when every attempt failed. Its message is the
// message of the last failure.
type ExtractionError struct {
	Attempts int
	Last     error
}

func (e *ExtractionError) Error() string {
	return e.Last.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Last
}

// Compile-time check that FrameExtractor implements Extractor.
var _ Extractor = (*FrameExtractor)(nil)

// FrameExtractor implements Extractor with an ordered list of attempts.
type FrameExtractor struct {
	runner   Runner
	attempts []Attempt
	timeout  time.Duration
	logger   *slog.Logger
}

// ExtractorOption configures a FrameExtractor.
type ExtractorOption func(*FrameExtractor)

// WithRunner replaces the process runner.
func WithRunner(r Runner) ExtractorOption {
	return func(e *FrameExtractor) {
		e.runner = r
	}
}

// WithAttempts replaces the attempt list.
func WithAttempts(attempts []Attempt) ExtractorOption {
	return func(e *FrameExtractor) {
		e.attempts = attempts
	}
}

// WithAttemptTimeout sets the per-attempt deadline. Non-positive values are ignored.
func WithAttemptTimeout(d time.Duration) ExtractorOption {
	return func(e *FrameExtractor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ExtractorOption {
	return func(e *FrameExtractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewFrameExtractor creates a FrameExtractor using ExecRunner and
// DefaultAttempts unless overridden.
func NewFrameExtractor(opts ...ExtractorOption) *FrameExtractor {
	e := &FrameExtractor{
		runner:   ExecRunner{},
		attempts: DefaultAttempts(),
		timeout:  DefaultAttemptTimeout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractFrame runs the attempts in order and stops at the first one whose
// process exits with status zero. A timed-out attempt counts as a failure and
// the next attempt is tried; cancellation of ctx stops immediately.
func (e *FrameExtractor) ExtractFrame(ctx context.Context, bin, src, dst string) (Attempt, error) {
	start := time.Now()
	defer func() {
		metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	}()

	var lastErr error
	for i, attempt := range e.attempts {
		err := e.run(ctx, bin, attempt.Args(src, dst))
		if err == nil {
			metrics.ExtractionAttemptsTotal.WithLabelValues(attempt.Name, "success").Inc()
			e.logger.DebugContext(ctx, "frame extracted",
				slog.String("attempt", attempt.Name),
				slog.Int("index", i+1),
				slog.String("source", src),
			)
			return attempt, nil
		}

		metrics.ExtractionAttemptsTotal.WithLabelValues(attempt.Name, "failure").Inc()
		if ctx.Err() != nil {
			return Attempt{}, err
		}

		e.logger.DebugContext(ctx, "extraction attempt failed",
			slog.String("attempt", attempt.Name),
			slog.Int("index", i+1),
			slog.String("source", src),
			slog.String("error", err.Error()),
		)
		lastErr = err
	}

	if lastErr == nil {
		return Attempt{}, ErrNoFrameExtracted
	}
	return Attempt{}, &ExtractionError{Attempts: len(e.attempts), Last: lastErr}
}

func (e *FrameExtractor) run(ctx context.Context, bin string, args []string) error {
	attemptCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.runner.Run(attemptCtx, bin, args)
}
