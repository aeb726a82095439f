package detection

import "github.com/sushil-thakur/enviro-segment/internal/raster"

// Fire type labels emitted with each forest-fire detection, picked by
// whichever indicator dominates the region.
const (
	FireTypeActive = "active_fire"
	FireTypeSmoke  = "smoke"
	FireTypeBurned = "burned_area"
	FireTypeRisk   = "fire_risk"
)

// Forest-fire scoring constants. The base confidence earns one bonus
// for the strongest indicator present; severity weighs all three
// indicators together, with burned area counting half.
const (
	fireConfBase  = 40
	fireConfFloor = 50
	fireConfMax   = 95

	fireActiveBonus = 30 // active-fire ratio > 0.1
	fireSmokeBonus  = 25 // smoke ratio > 0.3
	fireBurnedBonus = 20 // burned ratio > 0.5

	fireActiveMin = 0.1
	fireSmokeMin  = 0.3
	fireBurnedMin = 0.5
)

// detectForestFire looks for the three fire signatures: active flame
// hues, desaturated smoke plumes, and darkened burn scars. The
// candidate mask is the union of all three; the per-region ratios then
// decide which signature the region actually is.
func detectForestFire(in *Input) []Detection {
	active := raster.InRangeAny(in.HSV, activeFireBands...)
	smoke := raster.InRange(in.HSV, smokeBand)
	burned := raster.InRange(in.HSV, burnedBand)

	indicators := active.Union(smoke).Union(burned)

	regions := FindRegions(indicators, minArea[ForestFire])
	dets := make([]Detection, 0, len(regions))

	for _, r := range regions {
		boxArea := float64(r.BBox.W * r.BBox.H)
		activeRatio := float64(active.CountWithin(r.BBox.Rect())) / boxArea
		smokeRatio := float64(smoke.CountWithin(r.BBox.Rect())) / boxArea
		burnedRatio := float64(burned.CountWithin(r.BBox.Rect())) / boxArea

		confidence := float64(fireConfBase)
		var fireType string
		switch {
		case activeRatio > fireActiveMin:
			confidence += fireActiveBonus
			fireType = FireTypeActive
		case smokeRatio > fireSmokeMin:
			confidence += fireSmokeBonus
			fireType = FireTypeSmoke
		case burnedRatio > fireBurnedMin:
			confidence += fireBurnedBonus
			fireType = FireTypeBurned
		default:
			fireType = FireTypeRisk
		}
		if confidence > fireConfMax {
			confidence = fireConfMax
		}

		total := activeRatio + smokeRatio + burnedRatio*0.5
		var severity Severity
		switch {
		case total > 0.7 || r.Area > 20000:
			severity = SeverityCritical
		case total > 0.4 || r.Area > 10000:
			severity = SeverityHigh
		case total > 0.2:
			severity = SeverityMedium
		default:
			severity = SeverityLow
		}

		if confidence <= fireConfFloor {
			continue
		}

		dets = append(dets, Detection{
			Class:       ForestFire,
			Confidence:  round2(confidence),
			BBox:        r.BBox,
			Area:        r.Area,
			Center:      r.Center,
			Severity:    severity,
			FireType:    fireType,
			ActiveRatio: ptr(round3(activeRatio)),
			SmokeRatio:  ptr(round3(smokeRatio)),
			BurnedRatio: ptr(round3(burnedRatio)),
		})
	}
	return dets
}
