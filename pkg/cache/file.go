package cache

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"time"
)

// FileCache is a file-backed cache for rendered artifacts.
//
// Artifacts are binary image data, so entries are stored raw rather than in
// a JSON envelope: each entry file is an 8-byte big-endian unix-nano
// expiration timestamp (zero for no expiry) followed by the artifact bytes.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir.
// The directory is created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

const headerSize = 8

// Get retrieves an artifact from the cache. Corrupt or expired entries are
// removed and reported as misses, never as errors.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(raw) < headerSize {
		_ = os.Remove(path)
		return nil, false, nil
	}

	expires := int64(binary.BigEndian.Uint64(raw[:headerSize]))
	if expires != 0 && time.Now().UnixNano() > expires {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return raw[headerSize:], true, nil
}

// Set stores an artifact. A ttl of zero means the entry never expires.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var expires int64
	if ttl > 0 {
		expires = time.Now().Add(ttl).UnixNano()
	}

	raw := make([]byte, headerSize+len(data))
	binary.BigEndian.PutUint64(raw[:headerSize], uint64(expires))
	copy(raw[headerSize:], data)

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// Delete removes an entry. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path converts a cache key to a file path. The first two hash characters
// form a subdirectory to avoid too many files in one dir.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".bin")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
