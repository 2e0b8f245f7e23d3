package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttempt_Args(t *testing.T) {
	const src, dst = "/videos/clip.mp4", "/tmp/thumbs/abc.jpg"

	tests := []struct {
		attempt Attempt
		want    []string
	}{
		{
			attempt: AttemptSeekAfterInput,
			want: []string{
				"-i", src, "-ss", "00:00:00.100",
				"-vframes", "1", "-vf", "scale=320:-1", "-q:v", "2", "-y", dst,
			},
		},
		{
			attempt: AttemptDeepProbe,
			want: []string{
				"-analyzeduration", "100M", "-probesize", "100M",
				"-i", src, "-ss", "00:00:00.100",
				"-vframes", "1", "-vf", "scale=320:-1", "-q:v", "2", "-y", dst,
			},
		},
		{
			attempt: AttemptSeekBeforeInput,
			want: []string{
				"-ss", "0.1", "-analyzeduration", "100M", "-probesize", "100M",
				"-i", src,
				"-vframes", "1", "-vf", "scale=320:-1", "-q:v", "2", "-y", dst,
			},
		},
		{
			attempt: AttemptFirstFrame,
			want: []string{
				"-analyzeduration", "100M", "-probesize", "100M",
				"-i", src,
				"-vframes", "1", "-vf", "scale=320:-1", "-q:v", "2", "-y", dst,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.attempt.Name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.attempt.Args(src, dst))
		})
	}
}

func TestDefaultAttempts_Order(t *testing.T) {
	attempts := DefaultAttempts()

	names := make([]string, 0, len(attempts))
	for _, a := range attempts {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"seek-after-input", "deep-probe", "seek-before-input", "first-frame"}, names)

	// Callers get their own slice.
	attempts[0] = Attempt{Name: "mutated"}
	assert.Equal(t, "seek-after-input", DefaultAttempts()[0].Name)
}

func TestAttempt_ArgsDoesNotAliasSharedSlices(t *testing.T) {
	a := AttemptDeepProbe.Args("a.mp4", "a.jpg")
	a[0] = "changed"

	assert.Equal(t, "-analyzeduration", AttemptDeepProbe.Args("b.mp4", "b.jpg")[0])
	assert.Equal(t, "-analyzeduration", AttemptFirstFrame.Args("b.mp4", "b.jpg")[0])
}
