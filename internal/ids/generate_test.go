package ids

import (
	"testing"

	"github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id := New()

	if len(id) != 36 {
		t.Fatalf("expected canonical UUID length 36, got %d: %q", len(id), id)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected %q to parse as a UUID: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected a version 4 UUID, got version %d", parsed.Version())
	}
}

func TestNew_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id after %d generations: %s", i, id)
		}
		seen[id] = true
	}
}
