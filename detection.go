package stabletrack

import (
	"errors"
	"fmt"
	"math"
)

// ErrMalformedDetection is returned when a detection carries a non finite
// bounding box or a confidence outside [0,1].  Such detections are skipped
// individually, they never abort the frame
var ErrMalformedDetection = errors.New("malformed detection")

// VolatileID is the unstable identifier assigned by the external
// detector/tracker.  It is unique only within a contiguous observation
// span and may be reassigned after occlusion or loss
type VolatileID int64

// StableID is the durable sequential identity assigned by this package.
// IDs start at 1, never decrease and are never reused
type StableID int

// Point represents the x,y screen coordinates of the center of a tracked
// bounding box
type Point struct {
	X, Y float32
}

// Detection is a single detected object box for one frame as reported by
// the external detector/tracker collaborator
type Detection struct {
	// ID is the volatile identifier from the upstream tracker
	ID VolatileID
	// Rect is the bounding box of the detected object
	Rect Rect
	// Prob is the confidence/probability of the detection
	Prob float32
}

// NewDetection is a constructor function for the Detection struct
func NewDetection(id VolatileID, rect Rect, prob float32) Detection {
	return Detection{
		ID:   id,
		Rect: rect,
		Prob: prob,
	}
}

// Validate checks a detection for malformed input from the upstream
// detector.  A failing detection is rejected on its own, other detections
// in the same frame are unaffected
func (d *Detection) Validate() error {

	if !d.Rect.IsFinite() {
		return fmt.Errorf("%w: non finite bounding box for volatile id %d",
			ErrMalformedDetection, d.ID)
	}

	p := float64(d.Prob)

	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: confidence %v outside [0,1] for volatile id %d",
			ErrMalformedDetection, d.Prob, d.ID)
	}

	return nil
}
