package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestIconsCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := newIconsCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("icons: %v", err)
	}

	out := buf.String()
	for _, kind := range []string{"compute", "relational-store", "queue"} {
		if !strings.Contains(out, kind) {
			t.Errorf("output missing kind %q:\n%s", kind, out)
		}
	}
}
