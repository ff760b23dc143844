package fileid

import (
	"encoding/hex"
	"errors"
	"testing"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	g := NewGenerator()

	id, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(id) != IDLength {
		t.Errorf("expected id length %d, got %d", IDLength, len(id))
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Errorf("id should be valid hex, got %q: %v", id, err)
	}
}

func TestGenerate_Distinct(t *testing.T) {
	g := NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}

func TestGenerate_DeterministicForFixedSource(t *testing.T) {
	fixed := func(n int) ([]byte, error) {
		return make([]byte, n), nil
	}
	g := NewGeneratorWithSource(fixed)

	id1, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	id2, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if id1 != id2 {
		t.Errorf("same entropy should produce same id: got %q and %q", id1, id2)
	}
}

func TestGenerate_SourceFailure(t *testing.T) {
	broken := func(n int) ([]byte, error) {
		return nil, errors.New("entropy pool unavailable")
	}
	g := NewGeneratorWithSource(broken)

	if _, err := g.Generate(); err == nil {
		t.Error("expected error when randomness source fails")
	}
}
