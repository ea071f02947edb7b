package stockpile

import (
	"testing"
)

func TestAccessorGetOr(t *testing.T) {
	w := newTestWorld(16)
	id, _ := w.reg.Create()

	// A miss returns the zero value, flagged empty.
	miss := w.health.GetOr(w.reg, id)
	if !miss.IsEmpty() {
		t.Errorf("GetOr() miss = %+v, expected empty", miss)
	}
	if Full(miss) {
		t.Errorf("Full() = true for zero-value miss")
	}

	// Writing to a miss result never corrupts later misses.
	miss.Current, miss.Max = 99, 99
	again := w.health.GetOr(w.reg, id)
	if !again.IsEmpty() {
		t.Errorf("miss after mutated miss = %+v, expected empty", again)
	}

	w.health.Attach(w.reg, id, &Health{Current: 7, Max: 10})
	hit := w.health.GetOr(w.reg, id)
	if hit.IsEmpty() || hit.Current != 7 {
		t.Errorf("GetOr() hit = %+v, want {7 10}", hit)
	}
	if !Full(hit) {
		t.Errorf("Full() = false for stored component")
	}
}

func TestAccessorGetForInvalidIDs(t *testing.T) {
	w := newTestWorld(16)
	w.reg.Alloc()

	tests := []struct {
		name string
		id   EntityID
	}{
		{"Entity zero", 0},
		{"Never created", 5},
		{"Out of range", 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := w.health.Get(w.reg, tt.id); ok {
				t.Errorf("Get(%d) reported a component", tt.id)
			}
			if got := w.health.GetOr(w.reg, tt.id); !got.IsEmpty() {
				t.Errorf("GetOr(%d) = %+v, expected empty", tt.id, got)
			}
			if w.health.Has(w.reg, tt.id) {
				t.Errorf("Has(%d) = true", tt.id)
			}
		})
	}
}

func TestAccessorRoundTrip(t *testing.T) {
	w := newTestWorld(16)
	id, _ := w.reg.Create()

	w.position.Attach(w.reg, id, &Position{X: 1.5, Y: -2})

	pos, ok := w.position.Get(w.reg, id)
	if !ok || pos.X != 1.5 || pos.Y != -2 {
		t.Fatalf("Get() = %+v, %v", pos, ok)
	}

	w.position.Remove(w.reg, id)
	if w.position.Has(w.reg, id) {
		t.Errorf("Has() = true after typed remove")
	}
}
