// Package cache provides byte-level caching for generated clique
// configuration sets and sweep reports.
//
// Enumeration for large n is exponential, so the CLI and the HTTP API cache
// serialized results keyed by n. Three backends are available:
//
//   - FileCache: XDG cache directory, used by the CLI
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching (--no-cache, tests)
//
// Keys are produced by a Keyer so that CLI and API agree on key layout and
// multi-tenant prefixes stay in one place.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by helpers that treat a miss as an error.
// Cache.Get itself reports misses via its bool return.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte-level key-value store with optional expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves the value for key. The second return value reports
	// whether the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the cacheable artifacts.
type Keyer interface {
	// ConfigsKey is the key for the configuration set of a given n.
	ConfigsKey(n int) string

	// ReportKey is the key for a sweep report covering n = 1..max.
	ReportKey(max int) string
}

// DefaultKeyer produces version-prefixed keys. The version segment guards
// against stale entries when the serialization format changes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ConfigsKey generates a key for Generate(n) results.
func (k *DefaultKeyer) ConfigsKey(n int) string {
	return hashKey("configs:v1", n)
}

// ReportKey generates a key for a sweep report.
func (k *DefaultKeyer) ReportKey(max int) string {
	return hashKey("report:v1", max)
}

// ScopedKeyer wraps a Keyer with a prefix so separate deployments or users
// can share one backend without key collisions.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
// A nil inner keyer defaults to the standard keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ConfigsKey generates a prefixed key for configuration sets.
func (k *ScopedKeyer) ConfigsKey(n int) string {
	return k.prefix + k.inner.ConfigsKey(n)
}

// ReportKey generates a prefixed key for sweep reports.
func (k *ScopedKeyer) ReportKey(max int) string {
	return k.prefix + k.inner.ReportKey(max)
}
