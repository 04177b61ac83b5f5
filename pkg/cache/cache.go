// Package cache provides a local cache for rendered diagram artifacts.
//
// Render inputs are deterministic - the same DOT text, format, and scale
// always produce the same artifact - so cached outputs are safe to reuse.
// Keys are content-addressed from the render inputs (see [ArtifactKey]).
//
// Two implementations are provided: [FileCache] for persistent on-disk
// caching (the CLI default) and [NullCache] for disabling caching without
// branching at call sites.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores rendered artifacts keyed by content hash.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey generates the cache key for a rendered artifact.
// The key is derived from everything that determines the output bytes:
// the DOT text (layout input), the output format, and the raster scale.
func ArtifactKey(dot, format string, scale float64) string {
	return hashKey("artifact", dot, format, scale)
}

// hashKey builds a key of the form "prefix:sha256(parts)". The parts are
// JSON-framed before hashing so boundaries stay unambiguous - ("ab", "c")
// and ("a", "bc") hash differently.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the hex-encoded sha256 digest of data. FileCache uses it to
// map keys onto the sharded on-disk layout.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
