// Package cache stores conversion results between runs.
//
// Converting a large save is dominated by parsing and mapping; re-running the
// CLI on an unchanged file (for example to add a JSON export) can reuse the
// previous document. Entries are keyed by a [Keyer] from the input content
// hash plus every option that affects the output.
//
// Two implementations are provided: [FileCache] for the CLI and [NullCache]
// when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Entry lifetimes.
const (
	// TTLConversion is how long a converted document stays cached. The key
	// already changes with the input and the rule table, so this only
	// bounds disk usage.
	TTLConversion = 30 * 24 * time.Hour

	// TTLArtifact is how long a rendered output stays cached.
	TTLArtifact = 30 * 24 * time.Hour
)
