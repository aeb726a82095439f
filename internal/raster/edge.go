package raster

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// CannyMask performs Canny edge detection on an intensity plane and
// returns the edge pixels as a mask.
//
// The pipeline is the usual one:
//
//  1. Gaussian blur to suppress noise
//  2. Sobel gradients (magnitude and direction)
//  3. Non-maximum suppression to thin edges to one pixel
//  4. Hysteresis thresholding: pixels above high are strong edges,
//     pixels between low and high survive only next to a strong edge
//
// Thresholds are on the 8-bit scale (0-255). The mining detector uses
// (50, 150), which works well on aerial frames with clear geometric
// structure.
func CannyMask(gray *image.Gray, low, high int) *Mask {
	w := gray.Bounds().Dx()
	h := gray.Bounds().Dy()
	out := NewMask(w, h)
	if w == 0 || h == 0 {
		return out
	}

	// Noise reduction. The blur radius approximates the classic 5x5
	// Gaussian kernel with sigma 1.4.
	blurred := blur.Gaussian(gray, 1.4)

	plane := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			plane[y*w+x] = float64(blurred.Pix[y*blurred.Stride+x*4]) / 255.0
		}
	}

	magnitude := make([]float64, w*h)
	direction := make([]float64, w*h)

	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, h-1)
					px := clamp(x+kx, 0, w-1)
					gx += plane[py*w+px] * sobelX[ky+1][kx+1]
					gy += plane[py*w+px] * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y*w+x] = math.Sqrt(gx*gx + gy*gy)
			direction[y*w+x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression: keep a pixel only if it is the local
	// maximum along its gradient direction.
	suppressed := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			angle := direction[y*w+x]
			mag := magnitude[y*w+x]

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1 = magnitude[y*w+x-1]
				n2 = magnitude[y*w+x+1]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1 = magnitude[(y-1)*w+x+1]
				n2 = magnitude[(y+1)*w+x-1]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1 = magnitude[(y-1)*w+x]
				n2 = magnitude[(y+1)*w+x]
			default:
				n1 = magnitude[(y-1)*w+x-1]
				n2 = magnitude[(y+1)*w+x+1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[y*w+x] = mag
			}
		}
	}

	lowT := float64(low) / 255.0
	highT := float64(high) / 255.0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			val := suppressed[y*w+x]
			if val >= highT {
				out.Pix[y*w+x] = 255
				continue
			}
			if val < lowT {
				continue
			}
			// Weak edge: keep only when connected to a strong one.
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, h-1)
					px := clamp(x+kx, 0, w-1)
					if suppressed[py*w+px] >= highT {
						out.Pix[y*w+x] = 255
					}
				}
			}
		}
	}

	return out
}

// LaplacianMask thresholds the absolute response of the discrete
// 4-neighbor Laplacian. Pixels where |response| exceeds cutoff are on.
//
// High-frequency texture (built structure, road grids) responds
// strongly, which is the urban-expansion signal; smooth terrain barely
// responds at all. Border pixels use clamped (replicated) neighbors.
func LaplacianMask(gray *image.Gray, cutoff int) *Mask {
	w := gray.Bounds().Dx()
	h := gray.Bounds().Dy()
	out := NewMask(w, h)

	at := func(x, y int) int {
		return int(gray.Pix[clamp(y, 0, h-1)*gray.Stride+clamp(x, 0, w-1)])
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			resp := at(x-1, y) + at(x+1, y) + at(x, y-1) + at(x, y+1) - 4*at(x, y)
			if resp < 0 {
				resp = -resp
			}
			if resp > cutoff {
				out.Pix[y*w+x] = 255
			}
		}
	}
	return out
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
