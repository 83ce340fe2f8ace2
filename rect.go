package stabletrack

import (
	"math"
)

// Tlwh (top left x, top left y, width, height) represents a 1x4 matrix
type Tlwh []float32

// Rect represents a bounding box with Tlwh (top left x, top left y, width,
// height) format
type Rect struct {
	Tlwh Tlwh
}

// NewRect creates a new Rect with given coordinates
func NewRect(x, y, width, height float32) Rect {
	return Rect{
		Tlwh: Tlwh{x, y, width, height},
	}
}

// X returns the x coordinate of the rectangle
func (r *Rect) X() float32 {
	return r.Tlwh[0]
}

// Y returns the y coordinate of the rectangle
func (r *Rect) Y() float32 {
	return r.Tlwh[1]
}

// Width returns the width of the rectangle
func (r *Rect) Width() float32 {
	return r.Tlwh[2]
}

// Height returns the height of the rectangle
func (r *Rect) Height() float32 {
	return r.Tlwh[3]
}

// TLX returns the top-left x coordinate of the rectangle
func (r *Rect) TLX() float32 {
	return r.Tlwh[0]
}

// TLY returns the top-left y coordinate of the rectangle
func (r *Rect) TLY() float32 {
	return r.Tlwh[1]
}

// BRX returns the bottom-right x coordinate of the rectangle
func (r *Rect) BRX() float32 {
	return r.Tlwh[0] + r.Tlwh[2]
}

// BRY returns the bottom-right y coordinate of the rectangle
func (r *Rect) BRY() float32 {
	return r.Tlwh[1] + r.Tlwh[3]
}

// Center returns the center point of the rectangle, the position the
// reconciliation core records for each detection
func (r *Rect) Center() Point {
	return Point{
		X: r.Tlwh[0] + r.Tlwh[2]/2,
		Y: r.Tlwh[1] + r.Tlwh[3]/2,
	}
}

// IsFinite returns true when all four box coordinates are finite numbers.
// Detectors occasionally emit NaN or Inf boxes on degenerate frames and
// those detections must be rejected rather than recorded
func (r *Rect) IsFinite() bool {
	if len(r.Tlwh) != 4 {
		return false
	}

	for _, v := range r.Tlwh {
		f := float64(v)

		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}

// GenerateRectByTlbr creates a Rect from Tlbr (top left x, top left y,
// bottom right x, bottom right y) format, the layout most YOLO style
// detectors report boxes in
func GenerateRectByTlbr(x1, y1, x2, y2 float32) Rect {
	return NewRect(x1, y1, x2-x1, y2-y1)
}
