package stabletrack

import (
	"testing"
)

// TestStoreRecordThresholds checks the record and trail confidence gates
// operate independently
func TestStoreRecordThresholds(t *testing.T) {

	store := NewStore(DefaultParams()) // record 0.3, trail 0.4

	// below both thresholds, nothing recorded
	store.Record(1, Point{X: 10, Y: 10}, 1, 0.2)

	if _, exists := store.Get(1); exists {
		t.Error("low confidence detection created track state")
	}

	// above record threshold only
	store.Record(1, Point{X: 11, Y: 10}, 2, 0.35)

	state, exists := store.Get(1)

	if !exists {
		t.Fatal("expected track state after recorded detection")
	}

	if state.Persistence() != 1 || state.Samples() != 1 {
		t.Errorf("got persistence %d samples %d, want 1 and 1",
			state.Persistence(), state.Samples())
	}

	if len(state.Trail()) != 0 {
		t.Errorf("expected empty trail at confidence 0.35, got %d points",
			len(state.Trail()))
	}

	// above both thresholds
	store.Record(1, Point{X: 12, Y: 10}, 3, 0.9)

	if state.Persistence() != 2 {
		t.Errorf("got persistence %d, want 2", state.Persistence())
	}

	if len(state.Trail()) != 1 {
		t.Errorf("expected 1 trail point, got %d", len(state.Trail()))
	}
}

// TestStorePositionHistory checks recorded samples keep their frame index
// in order
func TestStorePositionHistory(t *testing.T) {

	store := NewStore(DefaultParams())

	for frame := 1; frame <= 4; frame++ {
		store.Record(1, Point{X: float32(frame * 10), Y: 5}, frame, 0.9)
	}

	state, _ := store.Get(1)
	positions := state.Positions()

	if len(positions) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(positions))
	}

	for i, s := range positions {
		if s.Frame != i+1 {
			t.Errorf("sample %d has frame %d, want %d", i, s.Frame, i+1)
		}
	}
}

// TestStoreRecordedIDs checks the canonical ascending order used by the
// merge pass
func TestStoreRecordedIDs(t *testing.T) {

	store := NewStore(DefaultParams())

	for _, id := range []StableID{7, 2, 9, 4} {
		store.Record(id, Point{X: 1, Y: 1}, 1, 0.9)
	}

	ids := store.RecordedIDs()

	want := []StableID{2, 4, 7, 9}

	if len(ids) != len(want) {
		t.Fatalf("expected %d IDs, got %d", len(want), len(ids))
	}

	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d has ID %d, want %d", i, ids[i], want[i])
		}
	}
}

// TestStoreAbsorb checks merge absorption concatenates history, sums
// persistence and removes the source track
func TestStoreAbsorb(t *testing.T) {

	store := NewStore(DefaultParams())

	for frame := 1; frame <= 3; frame++ {
		store.Record(1, Point{X: float32(frame), Y: 0}, frame, 0.9)
		store.Record(2, Point{X: float32(frame + 100), Y: 0}, frame, 0.9)
	}

	if err := store.absorb(1, 2); err != nil {
		t.Fatalf("absorb failed: %v", err)
	}

	if _, exists := store.Get(2); exists {
		t.Error("absorbed track still present")
	}

	state, _ := store.Get(1)

	if state.Samples() != 6 {
		t.Errorf("expected 6 samples after absorb, got %d", state.Samples())
	}

	if state.Persistence() != 6 {
		t.Errorf("expected persistence 6 after absorb, got %d", state.Persistence())
	}

	if err := store.absorb(1, 2); err == nil {
		t.Error("expected error absorbing missing track")
	}
}
