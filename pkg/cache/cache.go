// Package cache stores rendered icons between runs.
//
// A render is a pure function of the source SVG bytes and the render
// settings, so its PNG output can be reused whenever both are unchanged.
// Keys are produced by a [Keyer]; values are opaque byte slices.
//
// Two implementations are provided:
//   - [FileCache]: JSON entries under a directory, for CLI use
//   - [NullCache]: never stores anything (--no-cache)
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered icon stays valid.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey returns the key for an icon rendered with opts.
	// sourceHash is the [Hash] of the SVG bytes.
	ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render settings that affect the output bytes.
type ArtifactKeyOpts struct {
	Size  int     `json:"size"`
	Scale float64 `json:"scale"`
	Align string  `json:"align"`
}

// DefaultKeyer produces "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes the source hash together with opts.
func (DefaultKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sourceHash, opts)
}
