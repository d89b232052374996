package camera

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Overlay text layout. Lines start at (25,40) and step down 40px, matching
// the watermark position readers expect near the top-left corner.
const (
	overlayLeft = 25
	overlayTop  = 40
	overlayStep = 40
)

var overlayColor = color.RGBA{R: 255}

// drawOverlay renders preview overlay lines onto a frame.
// The first line is the headline (device identity) and is drawn larger.
func drawOverlay(img *gocv.Mat, lines []string) {
	for i, line := range lines {
		scale, thickness := 0.8, 1
		if i == 0 {
			scale, thickness = 1.0, 2
		}
		putLine(img, line, i, scale, thickness)
	}
}

// drawWatermark renders the persisted annotation: device identity on the
// first line, label+timestamp on the second.
func drawWatermark(img *gocv.Mat, idLine, text string) {
	putLine(img, idLine, 0, 0.8, 1)
	putLine(img, text, 1, 0.8, 1)
}

func putLine(img *gocv.Mat, text string, row int, scale float64, thickness int) {
	org := image.Pt(overlayLeft, overlayTop+overlayStep*row)
	gocv.PutTextWithParams(img, text, org, gocv.FontHersheySimplex,
		scale, overlayColor, thickness, gocv.LineAA, false)
}
