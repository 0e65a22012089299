package hashutil

import (
	"crypto/sha256"
	"fmt"
)

// Fingerprint returns a 12-character hex digest identifying the given rows.
// Field and row boundaries are part of the digest, so ["ab", "c"] and
// ["a", "bc"] fingerprint differently.
func Fingerprint(rows [][]string) string {
	h := sha256.New()
	for _, row := range rows {
		for _, field := range row {
			_, _ = h.Write([]byte(field))
			_, _ = h.Write([]byte{0x1f})
		}
		_, _ = h.Write([]byte{0x1e})
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}

// IDFromSeed creates a deterministic 7-character hex ID from a seed string.
func IDFromSeed(seed string) string {
	hash := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", hash[:4])[:7]
}
