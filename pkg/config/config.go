// Package config loads CLI defaults from a TOML configuration file.
//
// The file lives at the platform config dir (e.g.
// ~/.config/diagraph/config.toml on Linux) and every field is optional:
//
//	direction = "left-to-right"
//	format = "png"
//	cache_dir = "/tmp/diagraph-cache"
//	no_cache = false
//
// A missing file yields the built-in defaults; a malformed file is an error
// so typos don't silently fall back.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/diagraph/diagraph/pkg/pipeline"
)

// Config holds CLI defaults. Flag values take precedence over these.
type Config struct {
	Direction string `toml:"direction"` // default layout direction
	Format    string `toml:"format"`    // default output format
	CacheDir  string `toml:"cache_dir"` // render cache location
	NoCache   bool   `toml:"no_cache"`  // disable the render cache
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Format:   pipeline.DefaultFormat,
		CacheDir: defaultCacheDir(),
	}
}

// Path returns the config file location for this platform.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "diagraph", "config.toml"), nil
}

// Load reads the config file at the default location. A missing file is not
// an error; the built-in defaults are returned.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path, filling unset fields with
// defaults. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = pipeline.DefaultFormat
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir()
	}
	return cfg, nil
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "diagraph-cache")
	}
	return filepath.Join(dir, "diagraph")
}
