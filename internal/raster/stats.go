package raster

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the intensity distribution of one frame. It is
// reported alongside the detection list so operators can spot frames
// that are too dark or too flat to segment reliably.
type Stats struct {
	// MeanIntensity is the average grayscale value (0-255).
	MeanIntensity float64 `json:"mean_intensity"`

	// StdIntensity is the sample standard deviation of the grayscale
	// values; near zero means a featureless frame.
	StdIntensity float64 `json:"std_intensity"`
}

// IntensityStats computes the mean and standard deviation of an
// intensity plane. Planes with fewer than two pixels report zero
// deviation.
func IntensityStats(gray *image.Gray) Stats {
	w := gray.Bounds().Dx()
	h := gray.Bounds().Dy()
	if w == 0 || h == 0 {
		return Stats{}
	}

	vals := make([]float64, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			vals = append(vals, float64(gray.Pix[y*gray.Stride+x]))
		}
	}

	mean, std := stat.MeanStdDev(vals, nil)
	if len(vals) < 2 {
		std = 0
	}
	return Stats{
		MeanIntensity: round2(mean),
		StdIntensity:  round2(std),
	}
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
