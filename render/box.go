package render

import (
	"fmt"
	"image"
	"image/color"

	stabletrack "github.com/stabletrack/go-stabletrack"
	"gocv.io/x/gocv"
)

// boxLabel records the label rendering details for a bounding box so all
// labels can be drawn as the top most layer
type boxLabel struct {
	rect    image.Rectangle
	bgClr   color.RGBA
	textClr color.RGBA
	text    string
	textPos image.Point
}

// TrackBoxes renders the bounding boxes for resolved detections.  Each box
// is drawn in its stable identities color with the stable ID as label, the
// volatile upstream ID never appears.  Box thickness scales with detection
// confidence and low confidence labels are greyed out
func TrackBoxes(img *gocv.Mat, results []stabletrack.Resolved, font Font) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0)

	for _, res := range results {

		useClr := IDColor(res.StableID)

		rect := image.Rect(
			int(res.Detection.Rect.TLX()), int(res.Detection.Rect.TLY()),
			int(res.Detection.Rect.BRX()), int(res.Detection.Rect.BRY()),
		)

		// thicker boxes for more confident detections
		thickness := int(res.Detection.Prob * 4)

		if thickness < 1 {
			thickness = 1
		}

		gocv.Rectangle(img, rect, useClr, thickness)

		// create text for label showing the stable ID only
		text := fmt.Sprintf("ID:%d (%.2f)", res.StableID, res.Detection.Prob)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		// grey out labels of low confidence detections
		bgClr := useClr
		textClr := font.Color

		if res.Detection.Prob <= 0.5 {
			bgClr = Grey
			textClr = DimWhite
		}

		labelPosition := image.Pt(rect.Min.X+font.LeftPad,
			rect.Min.Y-font.BottomPad)

		bRect := image.Rect(rect.Min.X,
			rect.Min.Y-textSize.Y-font.TopPad-font.BottomPad,
			rect.Min.X+textSize.X+font.LeftPad+font.RightPad, rect.Min.Y)

		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			bgClr:   bgClr,
			textClr: textClr,
			text:    text,
			textPos: labelPosition,
		})
	}

	// draw all precalculated box labels so they are the top most layer on
	// the image
	for _, box := range boxLabels {

		// draw box text gets written on
		gocv.Rectangle(img, box.rect, box.bgClr, -1)

		// draw the label over box
		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, box.textClr, font.Thickness,
			font.LineType, false)
	}
}
