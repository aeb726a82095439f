package detection

import "github.com/sushil-thakur/enviro-segment/internal/raster"

// The land-cover detectors score with class constants: their masks are
// specific enough that region size alone decides whether a finding is
// worth reporting.
const (
	agricultureConfidence = 60
	urbanConfidence       = 70
	waterConfidence       = 75
)

// detectAgriculture reports contiguous crop-green cover. No
// morphological cleanup; field boundaries are already contiguous at the
// band level.
func detectAgriculture(in *Input) []Detection {
	mask := raster.InRange(in.HSV, cropBand)
	return constantDetections(mask, Agriculture, agricultureConfidence, SeverityLow)
}

// detectUrbanExpansion reports high-texture built-up areas. The signal
// is edge density, not color: the mask is the thresholded absolute
// Laplacian response of the intensity plane.
func detectUrbanExpansion(in *Input) []Detection {
	mask := raster.LaplacianMask(in.Gray, laplacianCutoff)
	return constantDetections(mask, UrbanExpansion, urbanConfidence, SeverityMedium)
}

// detectWaterBodies reports contiguous water-blue cover.
func detectWaterBodies(in *Input) []Detection {
	mask := raster.InRange(in.HSV, waterBand)
	return constantDetections(mask, WaterBody, waterConfidence, SeverityLow)
}

// constantDetections extracts regions from a mask and emits one
// detection per region with the class's fixed confidence and severity.
func constantDetections(mask *raster.Mask, c Class, confidence float64, severity Severity) []Detection {
	regions := FindRegions(mask, minArea[c])
	dets := make([]Detection, 0, len(regions))
	for _, r := range regions {
		dets = append(dets, Detection{
			Class:      c,
			Confidence: confidence,
			BBox:       r.BBox,
			Area:       r.Area,
			Center:     r.Center,
			Severity:   severity,
		})
	}
	return dets
}
