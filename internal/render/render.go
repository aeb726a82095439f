package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sushil-thakur/enviro-segment/internal/detection"
)

// classColors maps each detector class to its fixed overlay color.
var classColors = [...]color.NRGBA{
	detection.Deforestation:  {R: 255, G: 0, B: 0, A: 255},
	detection.Mining:         {R: 255, G: 165, B: 0, A: 255},
	detection.ForestFire:     {R: 255, G: 69, B: 0, A: 255},
	detection.Agriculture:    {R: 0, G: 255, B: 0, A: 255},
	detection.UrbanExpansion: {R: 128, G: 128, B: 128, A: 255},
	detection.WaterBody:      {R: 0, G: 0, B: 255, A: 255},
}

// fallbackColor is used for a class value outside the table; with the
// fixed enum this only happens if the table and enum ever drift.
var fallbackColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Annotate draws every detection onto a copy of the source frame and
// returns the copy. Boxes use the class color with thickness 4 for
// critical, 3 for high, and 2 otherwise; the label baseline sits 10
// pixels above the box, clamped so it stays on the image.
func Annotate(src image.Image, dets []detection.Detection) *image.NRGBA {
	out := imaging.Clone(src)

	for _, d := range dets {
		col := fallbackColor
		if d.Class.Valid() {
			col = classColors[d.Class]
		}

		drawRect(out, d.BBox.Rect(), col, severityThickness(d.Severity))

		label := fmt.Sprintf("%s: %.1f%%", d.Class, d.Confidence)
		drawLabel(out, d.BBox.X, d.BBox.Y-10, label, col)
	}
	return out
}

// Save writes the annotated frame to path. The format follows the file
// extension; the engine always writes .jpg with the configured quality.
func Save(img image.Image, path string, quality int) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to write result image %s: %w", path, err)
	}
	return nil
}

// severityThickness returns the box line thickness for a severity
// bucket: 4 for critical, 3 for high, 2 for everything else.
func severityThickness(s detection.Severity) int {
	switch s {
	case detection.SeverityCritical:
		return 4
	case detection.SeverityHigh:
		return 3
	default:
		return 2
	}
}

// drawRect draws a rectangle outline of the given thickness, growing
// inward from r's border. Drawing is clipped to the image bounds.
func drawRect(img *image.NRGBA, r image.Rectangle, col color.NRGBA, thickness int) {
	bounds := img.Bounds()
	for t := 0; t < thickness; t++ {
		ring := image.Rect(r.Min.X+t, r.Min.Y+t, r.Max.X-t, r.Max.Y-t)
		if ring.Empty() {
			break
		}
		// Horizontal edges.
		for x := ring.Min.X; x < ring.Max.X; x++ {
			setIfInside(img, bounds, x, ring.Min.Y, col)
			setIfInside(img, bounds, x, ring.Max.Y-1, col)
		}
		// Vertical edges.
		for y := ring.Min.Y; y < ring.Max.Y; y++ {
			setIfInside(img, bounds, ring.Min.X, y, col)
			setIfInside(img, bounds, ring.Max.X-1, y, col)
		}
	}
}

func setIfInside(img *image.NRGBA, bounds image.Rectangle, x, y int, col color.NRGBA) {
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		img.SetNRGBA(x, y, col)
	}
}

// drawLabel renders text with its baseline at (x, baseline) using the
// fixed 7x13 bitmap face. A baseline above the visible area is pushed
// down so the label is never lost off the top edge.
func drawLabel(img *image.NRGBA, x, baseline int, text string, col color.NRGBA) {
	if baseline < basicfont.Face7x13.Ascent {
		baseline = basicfont.Face7x13.Ascent
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}
