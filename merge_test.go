package stabletrack

import (
	"testing"
)

// buildTrack records n samples for the given stable identity walking from
// the start point with the given step per frame
func buildTrack(store *Store, registry *Registry, volatile VolatileID,
	n int, startX, startY, step float32) StableID {

	stable := registry.Resolve(volatile, 1)

	for i := 0; i < n; i++ {
		store.Record(stable, Point{
			X: startX + float32(i)*step,
			Y: startY,
		}, i+1, 0.9)
	}

	return stable
}

// TestMergerClosePair checks two tracks whose trailing samples average
// under the distance limit are merged, later into earlier
func TestMergerClosePair(t *testing.T) {

	params := DefaultParams()
	store := NewStore(params)
	registry := NewRegistry()

	// parallel tracks 50 pixels apart, mean trailing distance 50
	a := buildTrack(store, registry, 10, 8, 100, 100, 5)
	b := buildTrack(store, registry, 20, 8, 100, 150, 5)

	merged, err := NewMerger(params).Run(store, registry)

	if err != nil {
		t.Fatalf("merge pass failed: %v", err)
	}

	if merged != 1 {
		t.Fatalf("expected 1 merge, got %d", merged)
	}

	if _, exists := store.Get(b); exists {
		t.Error("merged away track still in store")
	}

	state, exists := store.Get(a)

	if !exists {
		t.Fatal("survivor track missing from store")
	}

	if state.Samples() != 16 {
		t.Errorf("survivor has %d samples, want 16", state.Samples())
	}

	if state.Persistence() != 16 {
		t.Errorf("survivor has persistence %d, want 16", state.Persistence())
	}

	// provenance union under the survivor
	ids := registry.VolatileIDs(a)

	if len(ids) != 2 || ids[0] != 10 || ids[1] != 20 {
		t.Errorf("survivor provenance %v, want [10 20]", ids)
	}

	if stable, _ := registry.Lookup(20); stable != a {
		t.Errorf("volatile 20 maps to stable %d after merge, want %d", stable, a)
	}
}

// TestMergerDistantPair checks tracks further apart than the distance
// limit stay separate
func TestMergerDistantPair(t *testing.T) {

	params := DefaultParams()
	store := NewStore(params)
	registry := NewRegistry()

	buildTrack(store, registry, 10, 8, 100, 100, 5)
	buildTrack(store, registry, 20, 8, 100, 250, 5) // 150 pixels away

	merged, err := NewMerger(params).Run(store, registry)

	if err != nil {
		t.Fatalf("merge pass failed: %v", err)
	}

	if merged != 0 {
		t.Errorf("expected no merges, got %d", merged)
	}

	if store.Len() != 2 {
		t.Errorf("expected 2 tracks, got %d", store.Len())
	}
}

// TestMergerShortTrackGuard checks tracks with fewer samples than the
// guard are never considered regardless of proximity
func TestMergerShortTrackGuard(t *testing.T) {

	params := DefaultParams() // MinMergeSamples 5
	store := NewStore(params)
	registry := NewRegistry()

	buildTrack(store, registry, 10, 4, 100, 100, 1)
	buildTrack(store, registry, 20, 4, 100, 101, 1) // 1 pixel away

	merged, err := NewMerger(params).Run(store, registry)

	if err != nil {
		t.Fatalf("merge pass failed: %v", err)
	}

	if merged != 0 {
		t.Errorf("expected no merges for short tracks, got %d", merged)
	}
}

// TestMergerBoundaryDistance checks the strict inequality at the distance
// limit, an exact limit average must not merge
func TestMergerBoundaryDistance(t *testing.T) {

	params := DefaultParams() // MaxMergeDistance 100
	store := NewStore(params)
	registry := NewRegistry()

	buildTrack(store, registry, 10, 5, 0, 0, 2)
	buildTrack(store, registry, 20, 5, 0, 100, 2) // exactly 100 apart

	merged, err := NewMerger(params).Run(store, registry)

	if err != nil {
		t.Fatalf("merge pass failed: %v", err)
	}

	if merged != 0 {
		t.Errorf("expected no merge at the exact distance limit, got %d", merged)
	}
}

// TestMergerChain checks the single pass scan order, the earliest identity
// absorbs every later close identity in ascending order
func TestMergerChain(t *testing.T) {

	params := DefaultParams()
	store := NewStore(params)
	registry := NewRegistry()

	a := buildTrack(store, registry, 10, 8, 100, 100, 5)
	b := buildTrack(store, registry, 20, 8, 100, 140, 5)
	c := buildTrack(store, registry, 30, 8, 100, 180, 5)

	merged, err := NewMerger(params).Run(store, registry)

	if err != nil {
		t.Fatalf("merge pass failed: %v", err)
	}

	if merged != 2 {
		t.Fatalf("expected 2 merges, got %d", merged)
	}

	if store.Len() != 1 {
		t.Fatalf("expected a single surviving track, got %d", store.Len())
	}

	if _, exists := store.Get(a); !exists {
		t.Error("expected lowest stable ID to survive the chain")
	}

	for _, goneID := range []StableID{b, c} {
		if _, exists := store.Get(goneID); exists {
			t.Errorf("stable %d should have been merged away", goneID)
		}
	}

	if ids := registry.VolatileIDs(a); len(ids) != 3 {
		t.Errorf("survivor provenance %v, want all three volatile IDs", ids)
	}
}
