package raster

import "image"

// Mask is a binary per-pixel membership grid with the same dimensions
// as the plane it was derived from.
//
// Pixels are stored row-major, one byte per pixel, with 255 meaning
// "on" and 0 meaning "off" (the OpenCV convention the detector
// constants were tuned against). Masks are never mutated after the
// operation that produced them returns; combining masks always
// allocates a new one.
type Mask struct {
	W, H int
	Pix  []uint8
}

// NewMask creates an all-off mask of the given dimensions.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, Pix: make([]uint8, w*h)}
}

// At reports whether the pixel at (x, y) is on.
// No bounds checking is performed.
func (m *Mask) At(x, y int) bool {
	return m.Pix[y*m.W+x] != 0
}

// Set switches the pixel at (x, y) on or off.
// No bounds checking is performed.
func (m *Mask) Set(x, y int, on bool) {
	if on {
		m.Pix[y*m.W+x] = 255
	} else {
		m.Pix[y*m.W+x] = 0
	}
}

// Count returns the number of on pixels in the whole mask.
func (m *Mask) Count() int {
	n := 0
	for _, p := range m.Pix {
		if p != 0 {
			n++
		}
	}
	return n
}

// CountWithin returns the number of on pixels inside r. The rectangle
// is clipped to the mask dimensions first.
func (m *Mask) CountWithin(r image.Rectangle) int {
	r = r.Intersect(image.Rect(0, 0, m.W, m.H))
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.Pix[y*m.W : y*m.W+m.W]
		for x := r.Min.X; x < r.Max.X; x++ {
			if row[x] != 0 {
				n++
			}
		}
	}
	return n
}

// Union returns a new mask that is on wherever either input is on.
// Both masks must have identical dimensions.
func (m *Mask) Union(o *Mask) *Mask {
	out := NewMask(m.W, m.H)
	for i := range m.Pix {
		if m.Pix[i] != 0 || o.Pix[i] != 0 {
			out.Pix[i] = 255
		}
	}
	return out
}

// Band describes one inclusive HSV range. A pixel belongs to the band
// when LoH <= hue <= HiH, LoS <= sat <= HiS, and LoV <= val <= HiV.
// Hue is on the 0-180 scale.
type Band struct {
	LoH, LoS, LoV uint8
	HiH, HiS, HiV uint8
}

// InRange builds the membership mask of a single HSV band.
func InRange(hsv *HSV, b Band) *Mask {
	out := NewMask(hsv.W, hsv.H)
	for i := range out.Pix {
		h, s, v := hsv.Hue[i], hsv.Sat[i], hsv.Val[i]
		if h >= b.LoH && h <= b.HiH && s >= b.LoS && s <= b.HiS && v >= b.LoV && v <= b.HiV {
			out.Pix[i] = 255
		}
	}
	return out
}

// InRangeAny builds the union of several band masks in one pass.
// Bands belonging to the same phenomenon are combined this way.
func InRangeAny(hsv *HSV, bands ...Band) *Mask {
	out := NewMask(hsv.W, hsv.H)
	for i := range out.Pix {
		h, s, v := hsv.Hue[i], hsv.Sat[i], hsv.Val[i]
		for _, b := range bands {
			if h >= b.LoH && h <= b.HiH && s >= b.LoS && s <= b.HiS && v >= b.LoV && v <= b.HiV {
				out.Pix[i] = 255
				break
			}
		}
	}
	return out
}
