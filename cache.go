package notionmark

import (
	"context"
	"time"
)

// Cache is a keyed store of encoded remote responses with per-entry expiry.
type Cache interface {
	// Get returns the value stored under key.
	// Returns ENOTFOUND if the key is missing or its entry has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous entry.
	// A ttl of zero or less stores an entry that never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
