// Package cache stores computed layouts between runs.
//
// Force-directed layouts are the most expensive step of an animation, and
// they depend only on the graph structure and the layout parameters. The CLI
// caches them in a [FileCache] under the user cache directory; [NullCache]
// disables caching.
//
// Keys are built by a [Keyer] so that every input that affects the layout
// is part of the key:
//
//	key := keyer.LayoutKey(graph.Hash(g), cache.LayoutKeyOpts{Seed: 42, Iterations: 500})
package cache

import (
	"context"
	"time"
)

// TTLLayout is how long cached layouts stay valid.
const TTLLayout = 30 * 24 * time.Hour

// Cache is a byte-oriented key-value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported with ok=false and
	// a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts are the layout parameters that change its result.
type LayoutKeyOpts struct {
	Seed       uint64 `json:"seed"`
	Iterations int    `json:"iterations"`
}

// Keyer builds cache keys.
type Keyer interface {
	LayoutKey(graphHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer produces keys of the form "layout:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns the key for a layout of the graph with the given hash.
func (DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}
