// Package cache provides persistent caching of rendered template output.
//
// Rendering is deterministic: the same template source and the same
// bindings always produce the same output. That makes the (source,
// bindings) pair a sound cache key, derived with Key.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Store persists rendered output keyed by Key.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores rendered output for a key.
	// Overwrites an existing entry for the same key.
	Save(key string, output []byte) error

	// Load retrieves rendered output.
	// Returns ErrNotFound if no entry exists.
	Load(key string) ([]byte, error)

	// Delete removes a single entry.
	// Returns nil if the entry doesn't exist.
	Delete(key string) error

	// Purge removes all entries.
	Purge() error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for cache operations.
var (
	// ErrNotFound indicates a cache entry doesn't exist.
	ErrNotFound = errors.New("cache entry not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("cache store closed")
)

// Key derives a cache key from template source and render bindings.
// Bindings are canonicalized through YAML encoding, which emits map
// keys in sorted order, so equal bindings always hash equally.
func Key(source string, vars map[string]any) (string, error) {
	bindings, err := yaml.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("encode bindings: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(source))
	h.Write([]byte{0})
	h.Write(bindings)
	return hex.EncodeToString(h.Sum(nil)), nil
}
