// Package cache memoizes classifier verdicts so re-running a corpus does not
// re-invoke the API for articles already classified.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-payload cache with per-entry TTL.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from the full prompt text.
func Key(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return "v1-" + hex.EncodeToString(hash[:])
}
