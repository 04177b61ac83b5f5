package render

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diagraph/diagraph/pkg/diagram"
	"github.com/diagraph/diagraph/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{FormatSVG, FormatPNG, FormatPDF, FormatDOT} {
		if err := ValidateFormat(format); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, want nil", format, err)
		}
	}

	for _, format := range []string{"", "jpeg", "SVG", "svg "} {
		err := ValidateFormat(format)
		if err == nil {
			t.Errorf("ValidateFormat(%q) = nil, want error", format)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want INVALID_FORMAT", format, errors.GetCode(err))
		}
	}
}

func TestRenderRejectsOpenDiagram(t *testing.T) {
	d := diagram.New("Open")
	if _, err := d.Node("a", "compute"); err != nil {
		t.Fatalf("Node: %v", err)
	}

	_, err := Render(context.Background(), d, FormatDOT, 0)
	if err == nil {
		t.Fatal("rendering an open diagram should fail")
	}
	if !errors.Is(err, errors.ErrCodeScope) {
		t.Errorf("error code = %v, want SCOPE_VIOLATION", errors.GetCode(err))
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	d, err := diagram.Build("Test", func(*diagram.Diagram) error { return nil })
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, err := Render(context.Background(), d, "tiff", 0); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestRenderDOT(t *testing.T) {
	d, err := diagram.Build("Wire Format", func(d *diagram.Diagram) error {
		a, err := d.Node("a", "compute")
		if err != nil {
			return err
		}
		b, err := d.Node("b", "cache")
		if err != nil {
			return err
		}
		_, err = d.Connect(a, b)
		return err
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	data, err := Render(context.Background(), d, FormatDOT, 0)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, `digraph "Wire Format" {`) {
		t.Errorf("unexpected DOT output:\n%s", out)
	}
	if !strings.Contains(out, "->") {
		t.Errorf("edge missing from DOT output:\n%s", out)
	}
}

func TestFileNoPartialOutputOnFailure(t *testing.T) {
	d := diagram.New("Open")
	path := filepath.Join(t.TempDir(), "out.dot")

	if _, err := File(context.Background(), d, path, FormatDOT, 0); err == nil {
		t.Fatal("File on an open diagram should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("failed File must not create %s", path)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "out.svg")

	if err := WriteFile(path, []byte("<svg/>")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("content = %q, want %q", data, "<svg/>")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("stray temp file: %s", e.Name())
		}
	}
}

func TestWriteFileOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")

	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile overwrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
}

func TestWriteFileBadDir(t *testing.T) {
	// A file where a directory is needed makes MkdirAll fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(filepath.Join(blocker, "out.svg"), []byte("data")); err == nil {
		t.Error("expected error when parent path is a file")
	}
}
