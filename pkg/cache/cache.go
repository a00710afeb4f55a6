// Package cache stores rendered artifacts keyed by content and options.
//
// Three backends implement [Cache]:
//   - [FileCache] for the CLI, under the user cache directory
//   - [RedisCache] and [MongoCache] for the HTTP server
//
// [NullCache] disables caching. Keys come from a [Keyer] so servers can
// scope them with [NewScopedKeyer].
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// Pinger is implemented by network-backed caches that can report whether
// their server is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Default TTLs.
const (
	// ArtifactTTL applies to rendered SVG, PNG, PDF, JSON and text output.
	// Encoding is deterministic, so entries only expire to bound disk use.
	ArtifactTTL = 30 * 24 * time.Hour
)
