package icons

import (
	"slices"
	"testing"
)

func TestLookup(t *testing.T) {
	g := Lookup("relational-store")
	if g.Kind != "relational-store" {
		t.Errorf("Kind = %q, want %q", g.Kind, "relational-store")
	}
	if g.Shape != "cylinder" {
		t.Errorf("Shape = %q, want %q", g.Shape, "cylinder")
	}
}

func TestLookupFallback(t *testing.T) {
	tests := []string{"", "quantum-annealer", "COMPUTE"}
	for _, kind := range tests {
		if g := Lookup(kind); g != Default {
			t.Errorf("Lookup(%q) = %+v, want Default", kind, g)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known("queue") {
		t.Error(`Known("queue") = false, want true`)
	}
	if Known("") {
		t.Error(`Known("") = true, want false`)
	}
	if Known("quantum-annealer") {
		t.Error(`Known("quantum-annealer") = true, want false`)
	}
}

func TestKindsSorted(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != len(catalog) {
		t.Errorf("Kinds() returned %d entries, catalog has %d", len(kinds), len(catalog))
	}
	if !slices.IsSorted(kinds) {
		t.Errorf("Kinds() not sorted: %v", kinds)
	}
	for _, k := range kinds {
		if !Known(k) {
			t.Errorf("Kinds() entry %q not Known", k)
		}
	}
}
