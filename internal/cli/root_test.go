package cli

import (
	"path/filepath"
	"testing"

	"github.com/diagraph/diagraph/pkg/config"
)

// defaultTestConfig returns the built-in config with the cache pointed away
// from the user's real cache directory.
func defaultTestConfig() config.Config {
	cfg := config.Default()
	cfg.CacheDir = filepath.Join("testdata", "cache")
	return cfg
}

func TestCommandConstructors(t *testing.T) {
	cfg := defaultTestConfig()

	tests := []struct {
		name string
		use  string
	}{
		{"render", newRenderCmd(cfg).Use},
		{"preview", newPreviewCmd(cfg).Use},
		{"icons", newIconsCmd().Use},
		{"completion", newCompletionCmd().Use},
	}

	for _, tt := range tests {
		if tt.use == "" {
			t.Errorf("%s command has empty Use", tt.name)
		}
	}
}
