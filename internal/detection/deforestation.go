package detection

import "github.com/sushil-thakur/enviro-segment/internal/raster"

// Deforestation scoring constants. Confidence is
// coverage*0.4 + vegetationLoss*0.4 + 20, clamped to [30, 95];
// detections at or below the floor are discarded.
const (
	deforestationConfFloor = 35
	deforestationConfMin   = 30
	deforestationConfMax   = 95
)

// detectDeforestation finds cleared ground (bare soil and freshly
// cleared bands) and scores each region by how much of it the clearing
// covers and how little healthy vegetation remains inside its bounding
// box.
func detectDeforestation(in *Input) []Detection {
	vegetation := raster.InRangeAny(in.HSV, vegetationBands...)

	cleared := raster.InRangeAny(in.HSV, clearedBands...)
	cleared = cleared.Close(deforestationSE)
	cleared = cleared.Open(deforestationSE)

	regions := FindRegions(cleared, minArea[Deforestation])
	dets := make([]Detection, 0, len(regions))

	for _, r := range regions {
		boxArea := float64(r.BBox.W * r.BBox.H)
		coverage := float64(cleared.CountWithin(r.BBox.Rect())) / boxArea * 100
		vegLoss := 100 - float64(vegetation.CountWithin(r.BBox.Rect()))/boxArea*100

		confidence := coverage*0.4 + vegLoss*0.4 + 20
		if confidence < deforestationConfMin {
			confidence = deforestationConfMin
		}
		if confidence > deforestationConfMax {
			confidence = deforestationConfMax
		}

		var severity Severity
		switch {
		case r.Area > 10000 && vegLoss > 70:
			severity = SeverityCritical
		case r.Area > 5000 && vegLoss > 50:
			severity = SeverityHigh
		case vegLoss > 30:
			severity = SeverityMedium
		default:
			severity = SeverityLow
		}

		if confidence <= deforestationConfFloor {
			continue
		}

		dets = append(dets, Detection{
			Class:          Deforestation,
			Confidence:     round2(confidence),
			BBox:           r.BBox,
			Area:           r.Area,
			Center:         r.Center,
			Severity:       severity,
			VegetationLoss: ptr(round2(vegLoss)),
		})
	}
	return dets
}
