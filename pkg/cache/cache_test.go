package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileCacheRoundtrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	key := ArtifactKey("digraph {}", "svg", 2.0)
	artifact := []byte("<svg>rendered</svg>")

	// Miss before Set.
	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get before Set = (ok=%v, err=%v), want miss", ok, err)
	}

	if err := c.Set(ctx, key, artifact, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get after Set = miss, want hit")
	}
	if string(got) != string(artifact) {
		t.Errorf("Get = %q, want %q", got, artifact)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "ephemeral", []byte("data"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, err := c.Get(ctx, "ephemeral"); err != nil || ok {
		t.Errorf("expired entry = (ok=%v, err=%v), want miss", ok, err)
	}

	// An expired entry is removed on the Get that detects it.
	fc := c.(*FileCache)
	if _, err := os.Stat(fc.path("ephemeral")); !os.IsNotExist(err) {
		t.Error("expired entry file should be removed")
	}
}

func TestFileCacheZeroTTLNeverExpires(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "forever", []byte("data"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "forever"); err != nil || !ok {
		t.Errorf("zero-ttl entry = (ok=%v, err=%v), want hit", ok, err)
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Entry shorter than the expiry header is corrupt.
	fc := c.(*FileCache)
	path := fc.path("corrupt")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := c.Get(context.Background(), "corrupt"); err != nil || ok {
		t.Errorf("corrupt entry = (ok=%v, err=%v), want miss without error", ok, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry file should be removed")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("Get after Delete = hit, want miss")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestFileCacheShardedLayout(t *testing.T) {
	fc := &FileCache{dir: "/cache"}
	path := fc.path("some-key")

	rel, err := filepath.Rel("/cache", path)
	if err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) != 2 {
		t.Fatalf("path %s should have one shard directory level", path)
	}
	if len(parts[0]) != 2 {
		t.Errorf("shard dir = %q, want 2 hash chars", parts[0])
	}
	if !strings.HasSuffix(parts[1], ".bin") {
		t.Errorf("entry file = %q, want .bin suffix", parts[1])
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("data"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "key"); err != nil || ok {
		t.Errorf("NullCache Get = (ok=%v, err=%v), want permanent miss", ok, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestArtifactKeyDeterministic(t *testing.T) {
	a := ArtifactKey("digraph {}", "svg", 2.0)
	b := ArtifactKey("digraph {}", "svg", 2.0)
	if a != b {
		t.Errorf("same inputs produced different keys: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "artifact:") {
		t.Errorf("key = %q, want artifact: prefix", a)
	}
}

func TestArtifactKeySensitivity(t *testing.T) {
	base := ArtifactKey("digraph {}", "svg", 2.0)
	tests := []struct {
		name string
		key  string
	}{
		{"dot", ArtifactKey("digraph {a}", "svg", 2.0)},
		{"format", ArtifactKey("digraph {}", "png", 2.0)},
		{"scale", ArtifactKey("digraph {}", "svg", 1.0)},
	}
	for _, tt := range tests {
		if tt.key == base {
			t.Errorf("changing %s did not change the key", tt.name)
		}
	}
}

func TestHash(t *testing.T) {
	h := Hash([]byte("hello"))
	if len(h) != 64 {
		t.Errorf("Hash length = %d, want 64 hex chars", len(h))
	}
	if h != Hash([]byte("hello")) {
		t.Error("Hash not deterministic")
	}
	if h == Hash([]byte("world")) {
		t.Error("different inputs should hash differently")
	}
}
