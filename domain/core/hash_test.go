package core

import "testing"

func TestComputeRowHash_SeparatorPreventsCollisions(t *testing.T) {
	// Without a separator these two rows would concatenate identically.
	a := ComputeRowHash([]string{"ab", "c"})
	b := ComputeRowHash([]string{"a", "bc"})
	if a == b {
		t.Error("adjacent cells must not collide by concatenation")
	}
}

func TestComputeRowHash_IsDeterministic(t *testing.T) {
	cells := []string{"25", "paris", ""}
	if ComputeRowHash(cells) != ComputeRowHash(cells) {
		t.Error("identical cells must hash identically")
	}
}

func TestNewFingerprint(t *testing.T) {
	fp := NewFingerprint([]byte("payload"))
	if fp.String() == "" {
		t.Fatal("fingerprint should not be empty")
	}
	if len(fp.String()) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex characters", len(fp.String()))
	}
	if NewFingerprint([]byte("payload")) != fp {
		t.Error("identical payloads must produce identical fingerprints")
	}
	if NewFingerprint([]byte("other")) == fp {
		t.Error("distinct payloads must produce distinct fingerprints")
	}
}

func TestNewID_IsUnique(t *testing.T) {
	seen := make(map[ID]struct{})
	for i := 0; i < 100; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Fatal("generated ID should not be empty")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
