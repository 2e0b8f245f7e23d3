// Package media drives the external ffmpeg tool that turns a video into a
// single still frame.
package media

import "context"

// Extractor defines the interface for single-frame extraction.
type Extractor interface {
	// ExtractFrame decodes one early frame of src with the tool at bin and
	// writes it as a JPEG to dst. Attempts are tried in order until one exits
	// successfully; the winning attempt is returned.
	ExtractFrame(ctx context.Context, bin, src, dst string) (Attempt, error)
}

// ToolResolver locates the frame-extraction executable.
type ToolResolver interface {
	// Resolve returns the absolute path of the executable or an error
	// wrapping ErrToolNotFound.
	Resolve() (string, error)
}

// Runner invokes an executable once. It is the seam used to replace the real
// process launch in tests.
type Runner interface {
	// Run executes bin with args and waits for it to exit. A non-zero exit
	// yields *FFmpegError; a failure to start the process yields *LaunchError.
	Run(ctx context.Context, bin string, args []string) error
}
