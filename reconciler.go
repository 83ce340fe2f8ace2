package stabletrack

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant indicates a lookup for a stable identity that does not
	// exist.  This is a logic defect inside the core rather than bad
	// input, callers must treat it as fatal
	ErrInvariant = errors.New("identity invariant violation")

	// ErrFinalized is returned when frames are fed to a reconciler after
	// Finalize has run
	ErrFinalized = errors.New("reconciler already finalized")

	// ErrFrameOrder is returned when a frame index does not increase.
	// The offending frame is skipped whole with prior state unchanged
	ErrFrameOrder = errors.New("frame index out of order")
)

// errInvariantID wraps ErrInvariant with the offending stable ID
func errInvariantID(id StableID) error {
	return fmt.Errorf("%w: unknown stable id %d", ErrInvariant, id)
}

// Resolved is the per detection output handed to rendering and reporting
// consumers after identity resolution
type Resolved struct {
	// Detection is the input detection unchanged
	Detection Detection
	// StableID is the resolved stable identity
	StableID StableID
	// Trail is the identities recent position history ordered oldest to
	// newest, at most Params.TrailLength points
	Trail []Point
}

// Reconciler composes the identity registry, track state store and
// lifecycle manager into the per frame reconciliation pipeline.  It is
// strictly sequential, frames must be processed one at a time in
// increasing frame index order
type Reconciler struct {
	params    Params
	registry  *Registry
	store     *Store
	lifecycle *Lifecycle

	// lastFrame is the highest frame index processed so far
	lastFrame int
	// framesProcessed counts frames applied to state
	framesProcessed int
	// skippedFrames counts frames rejected whole
	skippedFrames int
	// skippedDetections counts individual malformed detections dropped
	skippedDetections int

	finalized bool
}

// New returns a reconciler using the given parameters
func New(params Params) *Reconciler {
	return &Reconciler{
		params:    params,
		registry:  NewRegistry(),
		store:     NewStore(params),
		lifecycle: NewLifecycle(params),
	}
}

// ProcessFrame applies one frame of detections to the reconciliation
// state and returns the resolved identity for each accepted detection in
// input order.
//
// The frame index must be greater than that of the previous frame, an out
// of order frame is skipped whole and counted, with all prior state
// unchanged.  Malformed detections are dropped individually and counted
// without affecting the rest of the frame.  An empty detection list is a
// valid frame, previously active identities go lost
func (r *Reconciler) ProcessFrame(frame int, dets []Detection) ([]Resolved, error) {

	if r.finalized {
		return nil, ErrFinalized
	}

	if frame <= r.lastFrame {
		r.skippedFrames++
		return nil, fmt.Errorf("%w: frame %d after frame %d",
			ErrFrameOrder, frame, r.lastFrame)
	}

	// validate before any state mutation so a frames updates are atomic
	accepted := make([]Detection, 0, len(dets))

	for _, det := range dets {
		if err := det.Validate(); err != nil {
			r.skippedDetections++
			continue
		}

		accepted = append(accepted, det)
	}

	// resolve identities.  duplicate volatile IDs within the frame
	// collapse to the same stable identity
	current := make(map[StableID]struct{}, len(accepted))

	for _, det := range accepted {
		current[r.registry.Resolve(det.ID, frame)] = struct{}{}
	}

	// liveness update runs once per frame, before per detection recording
	r.lifecycle.Update(current, frame)

	out := make([]Resolved, 0, len(accepted))

	for _, det := range accepted {

		stable, exists := r.registry.Lookup(det.ID)

		if !exists {
			return nil, fmt.Errorf("%w: volatile id %d lost its mapping",
				ErrInvariant, det.ID)
		}

		r.store.Record(stable, det.Rect.Center(), frame, det.Prob)

		var trail []Point

		if state, ok := r.store.Get(stable); ok {
			trail = state.Trail()
		}

		out = append(out, Resolved{
			Detection: det,
			StableID:  stable,
			Trail:     trail,
		})
	}

	r.lastFrame = frame
	r.framesProcessed++

	return out, nil
}

// Finalize runs the merge pass and quality scoring once the stream has
// ended and returns the end of stream summary.  The reconciler accepts no
// further frames afterwards
func (r *Reconciler) Finalize() (*Summary, error) {

	if r.finalized {
		return nil, ErrFinalized
	}

	r.finalized = true

	merged, err := NewMerger(r.params).Run(r.store, r.registry)

	if err != nil {
		return nil, fmt.Errorf("merge pass failed: %w", err)
	}

	return newSummary(r, merged), nil
}

// FramesProcessed returns the number of frames applied to state
func (r *Reconciler) FramesProcessed() int {
	return r.framesProcessed
}

// LastFrame returns the highest frame index processed
func (r *Reconciler) LastFrame() int {
	return r.lastFrame
}

// SkippedFrames returns the number of frames rejected whole
func (r *Reconciler) SkippedFrames() int {
	return r.skippedFrames
}

// SkippedDetections returns the number of malformed detections dropped
func (r *Reconciler) SkippedDetections() int {
	return r.skippedDetections
}

// ActiveCount returns the number of identities active in the current frame
func (r *Reconciler) ActiveCount() int {
	return r.lifecycle.ActiveCount()
}

// LostCount returns the number of identities currently recorded as lost
func (r *Reconciler) LostCount() int {
	return r.lifecycle.LostCount()
}

// StableCount returns the number of stable identities created so far
func (r *Reconciler) StableCount() int {
	return r.registry.StableCount()
}

// VolatileCount returns the number of distinct volatile IDs seen so far
func (r *Reconciler) VolatileCount() int {
	return r.registry.VolatileCount()
}

// TraceHead returns the first n identity mapping events for logging
func (r *Reconciler) TraceHead(n int) []MappingEvent {
	return r.registry.TraceHead(n)
}

// Track returns the accumulated state for a stable identity
func (r *Reconciler) Track(id StableID) (*TrackState, bool) {
	return r.store.Get(id)
}
