package thumbnail

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key returns the cache key for a source reference: the lowercase hex
// SHA-256 digest of its UTF-8 bytes. The file content is not hashed, so a
// video modified in place keeps its old thumbnail until the cache is cleared.
func Key(sourceRef string) string {
	sum := sha256.Sum256([]byte(sourceRef))
	return hex.EncodeToString(sum[:])
}
