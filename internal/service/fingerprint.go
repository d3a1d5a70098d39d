package service

import (
	"crypto/sha256"
	"fmt"
)

// Fingerprint derives a cache key from album and artist metadata. Keying
// on metadata rather than image bytes means the cache still hits when the
// art path changes but the logical recording does not. Empty fields
// collapse to "unknown" so untagged tracks share one key instead of
// fragmenting the cache.
func Fingerprint(album, artist string) string {
	if album == "" {
		album = "unknown"
	}
	if artist == "" {
		artist = "unknown"
	}
	sum := sha256.Sum256([]byte(album + "-" + artist))
	return fmt.Sprintf("%x", sum[:16])
}
