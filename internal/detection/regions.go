package detection

import (
	"image"

	"github.com/sushil-thakur/enviro-segment/internal/raster"
)

// Region is one connected component extracted from a mask: its bounding
// box, its pixel area (count of on pixels, holes excluded), and its
// centroid. Regions only live for the duration of scoring one mask.
//
// The centroid is the bounding-box center, not the center of mass; the
// platform's downstream geometry depends on that convention.
type Region struct {
	BBox   BoundingBox
	Area   int
	Center Point
}

// FindRegions extracts the maximal 8-connected components of on pixels
// from a mask, discarding any whose pixel area is not strictly greater
// than the gate. Components are returned in scan order (top-left
// first), so repeated runs over the same mask yield the same slice.
func FindRegions(m *raster.Mask, areaGate int) []Region {
	visited := make([]bool, len(m.Pix))
	regions := make([]Region, 0)

	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			idx := y*m.W + x
			if m.Pix[idx] == 0 || visited[idx] {
				continue
			}
			if r, ok := fillComponent(m, visited, x, y, areaGate); ok {
				regions = append(regions, r)
			}
		}
	}
	return regions
}

// fillComponent flood-fills one component starting at (startX, startY)
// using an explicit stack (large regions would overflow the call
// stack). It tracks the component's extents and pixel count and builds
// the Region when the area clears the gate.
func fillComponent(m *raster.Mask, visited []bool, startX, startY, areaGate int) (Region, bool) {
	minX, minY := startX, startY
	maxX, maxY := startX, startY
	area := 0

	stack := []image.Point{{X: startX, Y: startY}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= m.W || p.Y < 0 || p.Y >= m.H {
			continue
		}
		idx := p.Y*m.W + p.X
		if visited[idx] || m.Pix[idx] == 0 {
			continue
		}
		visited[idx] = true
		area++

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		// 8-connected neighbors.
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}

	if area <= areaGate {
		return Region{}, false
	}

	w := maxX - minX + 1
	h := maxY - minY + 1
	return Region{
		BBox:   BoundingBox{X: minX, Y: minY, W: w, H: h},
		Area:   area,
		Center: Point{X: minX + w/2, Y: minY + h/2},
	}, true
}
