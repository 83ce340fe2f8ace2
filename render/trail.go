package render

import (
	"image"

	stabletrack "github.com/stabletrack/go-stabletrack"
	"gocv.io/x/gocv"
)

// TrailStyle defines the parameters used for rendering trails
type TrailStyle struct {
	// LineThickness is the trail line thickness in pixels
	LineThickness int
	// MinProb is the minimum detection confidence for the trail of a
	// detection to be drawn at all
	MinProb float32
	// FadeFactor scales the trail fade, older segments render darker.
	// 0.7 matches the look of a trail that dims towards its tail
	FadeFactor float64
}

// DefaultTrailStyle returns default trail style settings
func DefaultTrailStyle() TrailStyle {
	return TrailStyle{
		LineThickness: 2,
		MinProb:       0.4,
		FadeFactor:    0.7,
	}
}

// Trails draws the recent position trail for each resolved detection in
// its stable identities color, with older segments faded towards black
func Trails(img *gocv.Mat, results []stabletrack.Resolved, style TrailStyle) {

	for _, res := range results {

		if res.Detection.Prob <= style.MinProb {
			continue
		}

		points := res.Trail

		if len(points) < 2 {
			continue
		}

		clr := IDColor(res.StableID)

		for i := 1; i < len(points); i++ {

			alpha := float64(i) / float64(len(points)) * style.FadeFactor

			gocv.Line(img,
				image.Pt(int(points[i-1].X), int(points[i-1].Y)),
				image.Pt(int(points[i].X), int(points[i].Y)),
				fade(clr, alpha), style.LineThickness,
			)
		}
	}
}
