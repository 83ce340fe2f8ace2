package stabletrack

// Lifecycle tracks which stable identities are active in the current frame
// and which were recently lost.  Lost identities are kept for up to
// MaxLostFrames so a recovered track can be recognised before the
// bookkeeping entry is purged.  Purging never removes accumulated track
// state, only this liveness record
type Lifecycle struct {
	// active is the set of identities observed in the current frame
	active map[StableID]struct{}
	// lost maps an identity to the first frame it went missing in
	lost map[StableID]int
	// maxLostFrames is the purge age for lost entries
	maxLostFrames int
}

// NewLifecycle returns an empty lifecycle manager
func NewLifecycle(p Params) *Lifecycle {
	return &Lifecycle{
		active:        make(map[StableID]struct{}),
		lost:          make(map[StableID]int),
		maxLostFrames: p.MaxLostFrames,
	}
}

// Update replaces the active set with the identities observed in the
// current frame.  Identities active in the previous frame but missing now
// are recorded as lost at the current frame, the first frame they are
// missing.  Lost entries older than MaxLostFrames are purged.  Update must
// run exactly once per frame, before per detection recording
func (l *Lifecycle) Update(current map[StableID]struct{}, frame int) {

	// mark newly missing identities as lost
	for id := range l.active {
		if _, exists := current[id]; !exists {
			l.lost[id] = frame
		}
	}

	// an identity seen again stops being lost
	for id := range current {
		delete(l.lost, id)
	}

	// purge entries lost for too long
	for id, lostFrame := range l.lost {
		if frame-lostFrame > l.maxLostFrames {
			delete(l.lost, id)
		}
	}

	l.active = current
}

// IsActive returns true when the identity was observed in the current frame
func (l *Lifecycle) IsActive(id StableID) bool {
	_, exists := l.active[id]
	return exists
}

// ActiveCount returns the number of identities active in the current frame
func (l *Lifecycle) ActiveCount() int {
	return len(l.active)
}

// LostFrame returns the frame an identity went missing in, when it is
// currently recorded as lost
func (l *Lifecycle) LostFrame(id StableID) (int, bool) {
	frame, exists := l.lost[id]
	return frame, exists
}

// LostCount returns the number of identities currently recorded as lost
func (l *Lifecycle) LostCount() int {
	return len(l.lost)
}
