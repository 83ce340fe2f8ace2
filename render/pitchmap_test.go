package render

import (
	"image"
	"testing"

	stabletrack "github.com/stabletrack/go-stabletrack"
)

// TestTrajectoryMapDrawsPaths checks path pixels are painted in the
// identities color on the black background
func TestTrajectoryMapDrawsPaths(t *testing.T) {

	paths := []TrackPath{
		{
			ID: 1,
			Points: []stabletrack.Sample{
				{X: 10, Y: 10, Frame: 1},
				{X: 50, Y: 10, Frame: 2},
			},
		},
	}

	img := TrajectoryMap(paths, 100, 100, 100, 100)

	if img.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	want := IDColor(1)

	if got := img.RGBAAt(30, 10); got != want {
		t.Errorf("path pixel is %v, want %v", got, want)
	}

	if got := img.RGBAAt(30, 50); got != Black {
		t.Errorf("background pixel is %v, want black", got)
	}
}

// TestTrajectoryMapScaling checks the output is scaled to the requested
// size
func TestTrajectoryMapScaling(t *testing.T) {

	paths := []TrackPath{
		{
			ID: 2,
			Points: []stabletrack.Sample{
				{X: 0, Y: 0, Frame: 1},
				{X: 99, Y: 99, Frame: 2},
			},
		},
	}

	img := TrajectoryMap(paths, 100, 100, 50, 50)

	if img.Bounds() != image.Rect(0, 0, 50, 50) {
		t.Fatalf("unexpected scaled bounds %v", img.Bounds())
	}
}

// TestTrajectoryMapClipsOutOfBounds checks out of frame samples do not
// panic the line plotter
func TestTrajectoryMapClipsOutOfBounds(t *testing.T) {

	paths := []TrackPath{
		{
			ID: 3,
			Points: []stabletrack.Sample{
				{X: -20, Y: 10, Frame: 1},
				{X: 150, Y: 10, Frame: 2},
			},
		},
	}

	img := TrajectoryMap(paths, 100, 100, 100, 100)

	if got := img.RGBAAt(50, 10); got != IDColor(3) {
		t.Errorf("in bounds segment pixel is %v, want %v", got, IDColor(3))
	}
}
