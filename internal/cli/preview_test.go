package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/diagraph/diagraph/pkg/errors"
)

func TestRenderManifestSVGMissingFile(t *testing.T) {
	_, err := renderManifestSVG(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), "")
	if !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", apperrors.GetCode(err))
	}
}

func TestRenderManifestSVGInvalidManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	bad := "title: Bad\nedges:\n  - from: a\n    to: ghost\n"
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := renderManifestSVG(context.Background(), path, "")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidManifest) {
		t.Errorf("error code = %v, want INVALID_MANIFEST", apperrors.GetCode(err))
	}
}

func TestRenderManifestSVGBadDirectionOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.yaml")
	ok := "title: OK\nnodes:\n  - name: a\n"
	if err := os.WriteFile(path, []byte(ok), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := renderManifestSVG(context.Background(), path, "diagonal")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidDirection) {
		t.Errorf("error code = %v, want INVALID_DIRECTION", apperrors.GetCode(err))
	}
}
