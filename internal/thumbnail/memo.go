package thumbnail

import lru "github.com/hashicorp/golang-lru/v2"

// DefaultMemoEntries is the default number of data URIs kept in memory.
const DefaultMemoEntries = 512

// memo keeps the most recently produced data URIs, keyed by cache key.
// The LRU is safe for concurrent use.
type memo struct {
	uris *lru.Cache[string, string]
}

// newMemo creates a memo holding at most size URIs. A non-positive size
// uses DefaultMemoEntries.
func newMemo(size int) *memo {
	if size <= 0 {
		size = DefaultMemoEntries
	}
	// lru.New only fails for a non-positive size.
	uris, _ := lru.New[string, string](size)
	return &memo{uris: uris}
}

func (m *memo) Get(key string) (string, bool) {
	return m.uris.Get(key)
}

func (m *memo) Put(key, uri string) {
	m.uris.Add(key, uri)
}

func (m *memo) Forget(key string) {
	m.uris.Remove(key)
}

// Reset drops every entry.
func (m *memo) Reset() {
	m.uris.Purge()
}

func (m *memo) Len() int {
	return m.uris.Len()
}
