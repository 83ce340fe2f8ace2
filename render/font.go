package render

import (
	"gocv.io/x/gocv"
	"image/color"
)

// Font defines the parameters for rendering ID labels on an image using
// GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Padding to place around text
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.6,
		Color:     White,
		Thickness: 2,
		LineType:  gocv.LineAA,
		LeftPad:   5,
		RightPad:  5,
		TopPad:    4,
		BottomPad: 10,
	}
}
