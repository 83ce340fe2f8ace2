package stabletrack

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Merger is the post stream pass that unifies stable identities judged to
// be the same physical object, typically fragments created when a long
// occlusion produced a new identity instead of recovering the old one.
//
// The scan is a single pass over all unordered pairs in ascending stable
// ID order.  When a pair merges, the later identity flows into the earlier
// one and is not reconsidered against identities that come after it.  This
// is a deliberate simplicity trade off, the pass is not run to a fix point
type Merger struct {
	// maxDistance is the mean trailing distance below which two tracks
	// are considered the same object
	maxDistance float64
	// minSamples is the minimum recorded samples required on both sides
	// before a pair is considered
	minSamples int
}

// NewMerger returns a merger configured from the given parameters
func NewMerger(p Params) *Merger {
	return &Merger{
		maxDistance: p.MaxMergeDistance,
		minSamples:  p.MinMergeSamples,
	}
}

// Run evaluates every pair of identities with recorded position history in
// ascending stable ID order and merges matching pairs, returning the
// number of merges performed.  Merging B into A concatenates B's position
// history onto A's, adds its persistence, transfers its volatile ID
// provenance in the registry and removes B from the live set
func (m *Merger) Run(store *Store, registry *Registry) (int, error) {

	ids := store.RecordedIDs()
	merged := 0

	// identities merged away during the scan are skipped, not revisited
	gone := make(map[StableID]bool)

	for i, a := range ids {

		if gone[a] {
			continue
		}

		for _, b := range ids[i+1:] {

			if gone[a] || gone[b] {
				continue
			}

			aState, exists := store.Get(a)

			if !exists {
				return merged, errInvariantID(a)
			}

			bState, exists := store.Get(b)

			if !exists {
				return merged, errInvariantID(b)
			}

			if !m.shouldMerge(aState, bState) {
				continue
			}

			if err := store.absorb(a, b); err != nil {
				return merged, err
			}

			if err := registry.Transfer(b, a); err != nil {
				return merged, err
			}

			gone[b] = true
			merged++
		}
	}

	return merged, nil
}

// shouldMerge decides whether two tracks are the same physical object by
// comparing their trailing position samples.  The last minSamples of each
// track are paired by index, which assumes roughly time aligned sampling
// rates rather than identical frame indexes, a known approximation
func (m *Merger) shouldMerge(a, b *TrackState) bool {

	if a.Samples() < m.minSamples || b.Samples() < m.minSamples {
		return false
	}

	recentA := a.positions[a.Samples()-m.minSamples:]
	recentB := b.positions[b.Samples()-m.minSamples:]

	dists := make([]float64, m.minSamples)

	for i := range recentA {
		dx := float64(recentA[i].X - recentB[i].X)
		dy := float64(recentA[i].Y - recentB[i].Y)
		dists[i] = math.Sqrt(dx*dx + dy*dy)
	}

	return stat.Mean(dists, nil) < m.maxDistance
}
