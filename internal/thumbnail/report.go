package thumbnail

import "fmt"

const mebibyte = 1024 * 1024

// Report summarizes a cache clear.
type Report struct {
	// DirMissing is true when there was no cache directory.
	DirMissing bool
	// Entries is the number of cache files whose size was read.
	Entries int
	// FreedBytes is the total size of those files.
	FreedBytes int64
	// Failed is the number of files that could not be deleted.
	Failed int
}

// FreedMB returns the freed size in mebibytes with two decimals.
func (r Report) FreedMB() string {
	return fmt.Sprintf("%.2f", float64(r.FreedBytes)/mebibyte)
}

// String renders the human-readable summary.
func (r Report) String() string {
	if r.DirMissing {
		return "cache directory does not exist: cleared 0 cache files, freed 0.00 MB"
	}
	s := fmt.Sprintf("cleared %d cache files, freed %s MB", r.Entries, r.FreedMB())
	if r.Failed > 0 {
		s += fmt.Sprintf(" (%d could not be removed)", r.Failed)
	}
	return s
}
