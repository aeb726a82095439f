package raster

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV holds the hue, saturation, and value planes of an image as flat
// row-major byte slices.
//
// The planes use the 8-bit scale the detector band tables are written
// against: Hue 0-180 (degrees halved so a full turn fits in a byte),
// Saturation 0-255, Value 0-255. Planes are immutable after
// construction.
type HSV struct {
	W, H int
	Hue  []uint8
	Sat  []uint8
	Val  []uint8
}

// ToHSV converts an image into its HSV planes.
//
// Conversion runs per pixel through go-colorful's HSV model and is then
// rescaled: colorful reports hue in degrees (0-360) and saturation/value
// in [0,1]; the planes store hue/2 and s*255, v*255 rounded to the
// nearest integer. Fully desaturated pixels get hue 0.
func ToHSV(img image.Image) *HSV {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	out := &HSV{
		W:   w,
		H:   h,
		Hue: make([]uint8, w*h),
		Sat: make([]uint8, w*h),
		Val: make([]uint8, w*h),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			c := colorful.Color{
				R: float64(r>>8) / 255.0,
				G: float64(g>>8) / 255.0,
				B: float64(b>>8) / 255.0,
			}
			hue, sat, val := c.Hsv()

			i := y*w + x
			out.Hue[i] = uint8(math.Round(hue / 2))
			out.Sat[i] = uint8(math.Round(sat * 255))
			out.Val[i] = uint8(math.Round(val * 255))
		}
	}

	return out
}

// Grayscale converts an image to a single-channel intensity plane using
// ITU-R BT.601 luminance weights (0.299*R + 0.587*G + 0.114*B).
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	gray := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			gray.Pix[y*gray.Stride+x] = uint8(lum)
		}
	}
	return gray
}
