package thumbnail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_String(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   string
	}{
		{
			name:   "missing directory",
			report: Report{DirMissing: true},
			want:   "cache directory does not exist: cleared 0 cache files, freed 0.00 MB",
		},
		{
			name:   "one mebibyte",
			report: Report{Entries: 3, FreedBytes: 1 << 20},
			want:   "cleared 3 cache files, freed 1.00 MB",
		},
		{
			name:   "rounds to two decimals",
			report: Report{Entries: 1, FreedBytes: 1572864 + 5243}, // 1.505 MiB
			want:   "cleared 1 cache files, freed 1.51 MB",
		},
		{
			name:   "with failures",
			report: Report{Entries: 2, FreedBytes: 0, Failed: 1},
			want:   "cleared 2 cache files, freed 0.00 MB (1 could not be removed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.String())
		})
	}
}

func TestMemo(t *testing.T) {
	m := newMemo(0)

	_, ok := m.Get("k")
	assert.False(t, ok)

	m.Put("k", "uri")
	got, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "uri", got)
	assert.Equal(t, 1, m.Len())

	m.Forget("k")
	_, ok = m.Get("k")
	assert.False(t, ok)

	m.Put("k", "uri")
	m.Reset()
	_, ok = m.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMemo_EvictsLeastRecentlyUsed(t *testing.T) {
	m := newMemo(2)

	m.Put("a", "uri-a")
	m.Put("b", "uri-b")
	_, _ = m.Get("a")
	m.Put("c", "uri-c")

	assert.Equal(t, 2, m.Len())
	_, ok := m.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = m.Get("a")
	assert.True(t, ok)
	_, ok = m.Get("c")
	assert.True(t, ok)
}
