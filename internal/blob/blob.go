// Package blob stores uploaded site assets, keyed by slash-separated paths.
package blob

import (
	"context"
	"strings"
)

// Store persists binary assets such as command images.
type Store interface {
	// Put writes data under key, replacing any previous value.
	Put(ctx context.Context, key string, data []byte) error
	// Read returns the data stored under key, or ErrNotExist.
	Read(ctx context.Context, key string) ([]byte, error)
	// Exists reports whether key holds data.
	Exists(ctx context.Context, key string) bool
	// Delete removes the data stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}

// ValidKey reports whether key is a usable slash-separated asset path.
func ValidKey(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if strings.TrimSpace(part) == "" {
			return false
		}
		if part == "." || part == ".." {
			return false
		}
	}
	return true
}
