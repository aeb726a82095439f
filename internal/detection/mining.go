package detection

import "github.com/sushil-thakur/enviro-segment/internal/raster"

// Mining scoring constants. Confidence starts at a base and earns
// bonuses for the geometric signatures of extraction sites: compact
// aspect ratio, solid extent, dense machinery/bench edges.
const (
	miningConfBase  = 50
	miningConfFloor = 60
	miningConfMax   = 95

	miningAspectBonus = 15 // 0.3 < aspect < 3.0
	miningExtentBonus = 10 // extent > 0.5
	miningEdgeBonus   = 15 // edge density > 0.1

	miningAspectLo      = 0.3
	miningAspectHi      = 3.0
	miningExtentMin     = 0.5
	miningEdgeMin       = 0.1
	miningCriticalEdges = 0.15
)

// detectMining finds exposed rock, metallic surfaces, and disturbed
// earth, then scores candidate regions. Edge density comes from a Canny
// response over the intensity plane; mining sites show the geometric
// edge structure natural terrain lacks.
func detectMining(in *Input) []Detection {
	mask := raster.InRangeAny(in.HSV, miningBands...)
	mask = mask.Close(miningSE)

	edges := raster.CannyMask(in.Gray, cannyLow, cannyHigh)

	regions := FindRegions(mask, minArea[Mining])
	dets := make([]Detection, 0, len(regions))

	for _, r := range regions {
		boxArea := float64(r.BBox.W * r.BBox.H)
		aspect := float64(r.BBox.W) / float64(r.BBox.H)
		extent := float64(r.Area) / boxArea
		edgeDensity := float64(edges.CountWithin(r.BBox.Rect())) / boxArea

		confidence := float64(miningConfBase)
		if aspect > miningAspectLo && aspect < miningAspectHi {
			confidence += miningAspectBonus
		}
		if extent > miningExtentMin {
			confidence += miningExtentBonus
		}
		if edgeDensity > miningEdgeMin {
			confidence += miningEdgeBonus
		}
		if confidence > miningConfMax {
			confidence = miningConfMax
		}

		var severity Severity
		switch {
		case r.Area > 50000 && edgeDensity > miningCriticalEdges:
			severity = SeverityCritical
		case r.Area > 20000:
			severity = SeverityHigh
		case r.Area > 10000:
			severity = SeverityMedium
		default:
			severity = SeverityLow
		}

		if confidence <= miningConfFloor {
			continue
		}

		dets = append(dets, Detection{
			Class:       Mining,
			Confidence:  round2(confidence),
			BBox:        r.BBox,
			Area:        r.Area,
			Center:      r.Center,
			Severity:    severity,
			AspectRatio: ptr(round2(aspect)),
			EdgeDensity: ptr(round3(edgeDensity)),
		})
	}
	return dets
}
