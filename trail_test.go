package stabletrack

import (
	"testing"
)

// TestTrailOrdering checks points come back oldest to newest before the
// capacity is reached
func TestTrailOrdering(t *testing.T) {

	trail := NewTrail(5)

	for i := 0; i < 3; i++ {
		trail.Add(Point{X: float32(i), Y: float32(i)})
	}

	points := trail.Points()

	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	for i, p := range points {
		if p.X != float32(i) {
			t.Errorf("point %d has X %v, want %v", i, p.X, float32(i))
		}
	}
}

// TestTrailEviction checks the oldest point is dropped once the capacity
// is exceeded
func TestTrailEviction(t *testing.T) {

	trail := NewTrail(20)

	for i := 0; i < 25; i++ {
		trail.Add(Point{X: float32(i), Y: 0})
	}

	if trail.Len() != 20 {
		t.Fatalf("expected 20 points after overflow, got %d", trail.Len())
	}

	points := trail.Points()

	if points[0].X != 5 {
		t.Errorf("oldest point X is %v, want 5", points[0].X)
	}

	if points[len(points)-1].X != 24 {
		t.Errorf("newest point X is %v, want 24", points[len(points)-1].X)
	}
}
