package media

// Attempt is one argument configuration for the frame-extraction tool.
// PreInput is placed before "-i <source>", PostInput right after it.
type Attempt struct {
	Name      string
	PreInput  []string
	PostInput []string
}

var deepProbe = []string{"-analyzeduration", "100M", "-probesize", "100M"}

// The extraction attempts, in the order they are tried.
var (
	// AttemptSeekAfterInput seeks 100ms in with default probing.
	AttemptSeekAfterInput = Attempt{
		Name:      "seek-after-input",
		PostInput: []string{"-ss", "00:00:00.100"},
	}

	// AttemptDeepProbe raises the probe and analyze limits and keeps the seek
	// after the input.
	AttemptDeepProbe = Attempt{
		Name:      "deep-probe",
		PreInput:  deepProbe,
		PostInput: []string{"-ss", "00:00:00.100"},
	}

	// AttemptSeekBeforeInput moves the seek in front of the input, which some
	// containers handle better.
	AttemptSeekBeforeInput = Attempt{
		Name:     "seek-before-input",
		PreInput: append([]string{"-ss", "0.1"}, deepProbe...),
	}

	// AttemptFirstFrame does not seek at all and takes the very first frame.
	AttemptFirstFrame = Attempt{
		Name:     "first-frame",
		PreInput: deepProbe,
	}
)

// DefaultAttempts returns the attempts in fallback order.
func DefaultAttempts() []Attempt {
	return []Attempt{
		AttemptSeekAfterInput,
		AttemptDeepProbe,
		AttemptSeekBeforeInput,
		AttemptFirstFrame,
	}
}

// Args builds the full tool argument list for extracting one frame of src
// into dst, scaled to 320px wide at high JPEG quality.
func (a Attempt) Args(src, dst string) []string {
	args := make([]string, 0, len(a.PreInput)+len(a.PostInput)+12)
	args = append(args, a.PreInput...)
	args = append(args, "-i", src)
	args = append(args, a.PostInput...)
	args = append(args,
		"-vframes", "1",
		"-vf", "scale=320:-1",
		"-q:v", "2",
		"-y",
		dst,
	)
	return args
}
