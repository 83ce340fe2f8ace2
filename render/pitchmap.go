package render

import (
	"image"
	"image/color"

	stabletrack "github.com/stabletrack/go-stabletrack"
	xdraw "golang.org/x/image/draw"
)

// TrackPath pairs a stable identity with its full recorded position
// history for trajectory map rendering
type TrackPath struct {
	ID     stabletrack.StableID
	Points []stabletrack.Sample
}

// TrajectoryMap renders the whole run trajectory of every track onto a
// single image, each path drawn in its identities color on a black
// background.  Paths are drawn at the source video resolution srcW x srcH
// and the result is scaled to outW x outH.  Useful as a post run pitch
// map of player movement
func TrajectoryMap(paths []TrackPath, srcW, srcH, outW, outH int) *image.RGBA {

	canvas := image.NewRGBA(image.Rect(0, 0, srcW, srcH))

	// black background
	for i := 3; i < len(canvas.Pix); i += 4 {
		canvas.Pix[i] = 255
	}

	for _, path := range paths {

		clr := IDColor(path.ID)

		for i := 1; i < len(path.Points); i++ {
			drawLine(canvas,
				int(path.Points[i-1].X), int(path.Points[i-1].Y),
				int(path.Points[i].X), int(path.Points[i].Y), clr)
		}
	}

	if outW == srcW && outH == srcH {
		return canvas
	}

	scaled := image.NewRGBA(image.Rect(0, 0, outW, outH))

	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(),
		xdraw.Src, nil)

	return scaled
}

// drawLine plots a straight line segment between two points using integer
// line stepping, clipping to the image bounds
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, clr color.RGBA) {

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}

	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy

	for {
		if image.Pt(x0, y0).In(img.Bounds()) {
			img.SetRGBA(x0, y0, clr)
		}

		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * err

		if e2 >= dy {
			err += dy
			x0 += sx
		}

		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
