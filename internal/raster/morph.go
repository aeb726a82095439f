package raster

// Morphological cleanup with a square structuring element.
//
// The structuring element size must be odd (5 for most detectors, 7 for
// mining). A square element is separable, so dilation and erosion run
// as a horizontal pass followed by a vertical pass.

// Close applies dilation then erosion, bridging gaps smaller than the
// structuring element and merging fragmented detections.
func (m *Mask) Close(size int) *Mask {
	r := size / 2
	return m.dilate(r).erode(r)
}

// Open applies erosion then dilation, removing isolated speckle noise
// while preserving the shape of larger regions.
func (m *Mask) Open(size int) *Mask {
	r := size / 2
	return m.erode(r).dilate(r)
}

// dilate turns a pixel on if any pixel within radius r (Chebyshev
// distance) is on.
func (m *Mask) dilate(r int) *Mask {
	return m.spread(r, true)
}

// erode turns a pixel off unless every pixel within radius r is on.
// Pixels outside the mask count as on (the convention the detector
// thresholds were tuned against), so regions touching the border do not
// shrink at the border.
func (m *Mask) erode(r int) *Mask {
	return m.spread(r, false)
}

func (m *Mask) spread(r int, dilating bool) *Mask {
	if r <= 0 {
		out := NewMask(m.W, m.H)
		copy(out.Pix, m.Pix)
		return out
	}

	// Horizontal pass.
	horiz := NewMask(m.W, m.H)
	for y := 0; y < m.H; y++ {
		row := m.Pix[y*m.W : (y+1)*m.W]
		out := horiz.Pix[y*m.W : (y+1)*m.W]
		for x := 0; x < m.W; x++ {
			v := windowValue(row, x, r, m.W, dilating)
			out[x] = v
		}
	}

	// Vertical pass.
	final := NewMask(m.W, m.H)
	col := make([]uint8, m.H)
	for x := 0; x < m.W; x++ {
		for y := 0; y < m.H; y++ {
			col[y] = horiz.Pix[y*m.W+x]
		}
		for y := 0; y < m.H; y++ {
			final.Pix[y*m.W+x] = windowValue(col, y, r, m.H, dilating)
		}
	}
	return final
}

// windowValue evaluates a 1-D max (dilation) or min (erosion) over the
// window [i-r, i+r]. Positions outside [0, n) count as off for dilation
// and on for erosion.
func windowValue(line []uint8, i, r, n int, dilating bool) uint8 {
	lo := i - r
	hi := i + r
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	if dilating {
		for j := lo; j <= hi; j++ {
			if line[j] != 0 {
				return 255
			}
		}
		return 0
	}
	for j := lo; j <= hi; j++ {
		if line[j] == 0 {
			return 0
		}
	}
	return 255
}
