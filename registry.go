package stabletrack

import (
	"fmt"
)

// MappingEvent records the assignment of a stable ID to a volatile ID the
// first time it was observed
type MappingEvent struct {
	// Frame is the frame index at which the mapping was created
	Frame int
	// Volatile is the upstream tracker ID
	Volatile VolatileID
	// Stable is the sequential ID assigned to it
	Stable StableID
}

// Registry owns the bidirectional mapping between volatile upstream IDs and
// the stable sequential identities this package assigns.  Every volatile ID
// ever observed maps to exactly one stable ID, the inverse mapping is multi
// valued as one stable identity may aggregate several volatile IDs after
// merging
type Registry struct {
	// volatileToStable maps each upstream ID to its stable identity
	volatileToStable map[VolatileID]StableID
	// stableToVolatile is the exact inverse, in first observation order
	stableToVolatile map[StableID][]VolatileID
	// nextStableID is the counter for assigning new stable identities
	nextStableID StableID
	// trace is the full history of mapping events, kept unbounded.
	// Consumers render only the head, see TraceHead
	trace []MappingEvent
}

// NewRegistry returns an empty identity registry.  Stable IDs are assigned
// from 1 upwards in first observation order
func NewRegistry() *Registry {
	return &Registry{
		volatileToStable: make(map[VolatileID]StableID),
		stableToVolatile: make(map[StableID][]VolatileID),
		nextStableID:     1,
	}
}

// Resolve returns the stable identity for the given volatile ID, assigning
// the next sequential stable ID when the volatile ID has not been seen
// before.  Resolving a known ID again returns the existing identity
// unchanged, calling it multiple times within the same frame is harmless
func (r *Registry) Resolve(id VolatileID, frame int) StableID {

	if stable, exists := r.volatileToStable[id]; exists {
		return stable
	}

	stable := r.nextStableID
	r.nextStableID++

	r.volatileToStable[id] = stable
	r.stableToVolatile[stable] = append(r.stableToVolatile[stable], id)

	r.trace = append(r.trace, MappingEvent{
		Frame:    frame,
		Volatile: id,
		Stable:   stable,
	})

	return stable
}

// Lookup returns the stable identity already assigned to a volatile ID
// without creating one
func (r *Registry) Lookup(id VolatileID) (StableID, bool) {
	stable, exists := r.volatileToStable[id]
	return stable, exists
}

// VolatileIDs returns the volatile IDs aggregated under a stable identity,
// in the order they were first observed or transferred in
func (r *Registry) VolatileIDs(stable StableID) []VolatileID {

	ids, exists := r.stableToVolatile[stable]

	if !exists {
		return nil
	}

	out := make([]VolatileID, len(ids))
	copy(out, ids)
	return out
}

// VolatileCount returns the number of distinct volatile IDs ever observed
func (r *Registry) VolatileCount() int {
	return len(r.volatileToStable)
}

// StableCount returns the number of stable identities ever created,
// including identities later merged away
func (r *Registry) StableCount() int {
	return int(r.nextStableID) - 1
}

// Transfer moves every volatile ID aggregated under the from identity to
// the to identity and removes from entirely from the registry.  Both
// mapping directions are updated together so the inverse mapping stays
// exact.  It is called by the merge pass, from and to must both exist
func (r *Registry) Transfer(from, to StableID) error {

	ids, exists := r.stableToVolatile[from]

	if !exists {
		return fmt.Errorf("%w: transfer of unknown stable id %d",
			ErrInvariant, from)
	}

	if _, exists := r.stableToVolatile[to]; !exists {
		return fmt.Errorf("%w: transfer into unknown stable id %d",
			ErrInvariant, to)
	}

	for _, id := range ids {
		r.volatileToStable[id] = to
	}

	r.stableToVolatile[to] = append(r.stableToVolatile[to], ids...)
	delete(r.stableToVolatile, from)

	return nil
}

// TraceHead returns the first n mapping events for rendering to logs, or
// the full trace when fewer events exist
func (r *Registry) TraceHead(n int) []MappingEvent {

	if n > len(r.trace) {
		n = len(r.trace)
	}

	if n < 0 {
		n = 0
	}

	out := make([]MappingEvent, n)
	copy(out, r.trace[:n])
	return out
}

// TraceLen returns the total number of mapping events recorded
func (r *Registry) TraceLen() int {
	return len(r.trace)
}
