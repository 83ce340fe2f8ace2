package render

import (
	"image/color"
	"math/rand"

	stabletrack "github.com/stabletrack/go-stabletrack"
)

var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// Grey is used for label backgrounds of low confidence detections
	Grey = color.RGBA{R: 100, G: 100, B: 100, A: 255}

	// DimWhite is used for label text of low confidence detections
	DimWhite = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// IDColor returns the display color for a stable identity.  The color is
// drawn from a PRNG seeded with the numeric ID so the same identity always
// renders in the same color across frames, runs and platforms.  Each RGB
// channel falls in [50,255] to keep colors visible on dark footage
func IDColor(id stabletrack.StableID) color.RGBA {

	rng := rand.New(rand.NewSource(int64(id)))

	return color.RGBA{
		R: uint8(50 + rng.Intn(206)),
		G: uint8(50 + rng.Intn(206)),
		B: uint8(50 + rng.Intn(206)),
		A: 255,
	}
}

// fade scales a color towards black.  Alpha 1 keeps the color unchanged,
// 0 is fully black
func fade(clr color.RGBA, alpha float64) color.RGBA {

	if alpha < 0 {
		alpha = 0
	}

	if alpha > 1 {
		alpha = 1
	}

	return color.RGBA{
		R: uint8(float64(clr.R) * alpha),
		G: uint8(float64(clr.G) * alpha),
		B: uint8(float64(clr.B) * alpha),
		A: 255,
	}
}
