package stabletrack

import (
	"sort"
)

// Sample is one recorded track position together with the frame index it
// was observed at
type Sample struct {
	X, Y  float32
	Frame int
}

// TrackState is the accumulated state of one stable identity
type TrackState struct {
	// positions is the full recorded position history, append only during
	// live tracking, only further mutated by the merge pass
	positions []Sample
	// persistence is the number of frames the identity was recorded with
	// confidence above the record threshold
	persistence int
	// trail holds the most recent screen positions for rendering
	trail *Trail
}

// Persistence returns the number of frames the identity was recorded in
func (t *TrackState) Persistence() int {
	return t.persistence
}

// Samples returns the number of recorded position samples
func (t *TrackState) Samples() int {
	return len(t.positions)
}

// Positions returns a copy of the recorded position history
func (t *TrackState) Positions() []Sample {
	out := make([]Sample, len(t.positions))
	copy(out, t.positions)
	return out
}

// Trail returns the trail points ordered oldest to newest, or nil when no
// point has been appended yet
func (t *TrackState) Trail() []Point {

	if t.trail == nil {
		return nil
	}

	return t.trail.Points()
}

// Store is the arena of TrackState records keyed by stable identity.  It
// owns all per identity accumulated state, entries are created lazily on
// the first recorded observation and removed only by the merge pass
type Store struct {
	tracks       map[StableID]*TrackState
	recordThresh float32
	trailThresh  float32
	trailLen     int
}

// NewStore returns an empty track state store using the record and trail
// thresholds from the given parameters
func NewStore(p Params) *Store {
	return &Store{
		tracks:       make(map[StableID]*TrackState),
		recordThresh: p.RecordThreshold,
		trailThresh:  p.TrailThreshold,
		trailLen:     p.TrailLength,
	}
}

// Record accumulates one resolved detection into the identities track
// state.  Confidence above the record threshold appends to the position
// history and counts towards persistence, confidence above the trail
// threshold appends to the rendering trail.  The two gates are independent
func (s *Store) Record(id StableID, pos Point, frame int, prob float32) {

	record := prob > s.recordThresh
	trail := prob > s.trailThresh

	if !record && !trail {
		return
	}

	state, exists := s.tracks[id]

	if !exists {
		state = &TrackState{
			trail: NewTrail(s.trailLen),
		}
		s.tracks[id] = state
	}

	if record {
		state.persistence++
		state.positions = append(state.positions, Sample{
			X:     pos.X,
			Y:     pos.Y,
			Frame: frame,
		})
	}

	if trail {
		state.trail.Add(pos)
	}
}

// Get returns the track state for a stable identity
func (s *Store) Get(id StableID) (*TrackState, bool) {
	state, exists := s.tracks[id]
	return state, exists
}

// Len returns the number of identities holding track state
func (s *Store) Len() int {
	return len(s.tracks)
}

// RecordedIDs returns the stable identities with at least one recorded
// position sample in ascending order.  This is the canonical processing
// order of the merge pass
func (s *Store) RecordedIDs() []StableID {

	ids := make([]StableID, 0, len(s.tracks))

	for id, state := range s.tracks {
		if len(state.positions) > 0 {
			ids = append(ids, id)
		}
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	return ids
}

// absorb merges the state of src into dst and removes src from the store.
// The position histories are concatenated and persistence counts summed
func (s *Store) absorb(dst, src StableID) error {

	dstState, exists := s.tracks[dst]

	if !exists {
		return errInvariantID(dst)
	}

	srcState, exists := s.tracks[src]

	if !exists {
		return errInvariantID(src)
	}

	dstState.positions = append(dstState.positions, srcState.positions...)
	dstState.persistence += srcState.persistence

	delete(s.tracks, src)

	return nil
}
