package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotExist reports that no asset is stored under the requested key.
var ErrNotExist = errors.New("asset does not exist")

// DiskStore is a filesystem-backed asset store.
type DiskStore struct {
	d *diskv.Diskv
}

// OpenDisk creates a DiskStore rooted at basePath. Keys map to nested
// directories, so "assets/roll.jpg" lands in <basePath>/assets/roll.jpg.
func OpenDisk(basePath string) (*DiskStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("asset base path is required")
	}
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      8 * 1024 * 1024,
	})}, nil
}

func (s *DiskStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ValidKey(key) {
		return fmt.Errorf("invalid asset key %q", key)
	}
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("write asset %s: %w", key, err)
	}
	return nil
}

func (s *DiskStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !ValidKey(key) {
		return nil, fmt.Errorf("invalid asset key %q", key)
	}
	data, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("read asset %s: %w", key, err)
	}
	return data, nil
}

func (s *DiskStore) Exists(ctx context.Context, key string) bool {
	if ctx.Err() != nil || !ValidKey(key) {
		return false
	}
	return s.d.Has(key)
}

func (s *DiskStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ValidKey(key) {
		return fmt.Errorf("invalid asset key %q", key)
	}
	if err := s.d.Erase(key); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("erase asset %s: %w", key, err)
	}
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}

var _ Store = (*DiskStore)(nil)
