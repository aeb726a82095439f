package detection

import (
	"math"

	"github.com/sushil-thakur/enviro-segment/internal/raster"
)

// HSV band tables, hue on the 0-180 scale, saturation and value 0-255.
// Bands belonging to the same phenomenon are unioned into one mask.
var (
	// Healthy vegetation greens. Measured against this to derive
	// vegetation loss inside a cleared region.
	vegetationBands = []raster.Band{
		{LoH: 35, LoS: 40, LoV: 40, HiH: 85, HiS: 255, HiV: 255},
		{LoH: 25, LoS: 30, LoV: 30, HiH: 45, HiS: 255, HiV: 255},
	}

	// Bare soil browns and freshly cleared ground.
	clearedBands = []raster.Band{
		{LoH: 8, LoS: 50, LoV: 20, HiH: 25, HiS: 255, HiV: 200},
		{LoH: 15, LoS: 30, LoV: 100, HiH: 30, HiS: 150, HiV: 255},
	}

	// Exposed rock, metallic equipment surfaces, disturbed earth.
	miningBands = []raster.Band{
		{LoH: 0, LoS: 0, LoV: 80, HiH: 30, HiS: 80, HiV: 255},
		{LoH: 0, LoS: 0, LoV: 150, HiH: 180, HiS: 50, HiV: 255},
		{LoH: 5, LoS: 100, LoV: 50, HiH: 20, HiS: 255, HiV: 200},
	}

	// Active fire reds (both ends of the hue wheel) and flame yellows.
	activeFireBands = []raster.Band{
		{LoH: 0, LoS: 100, LoV: 100, HiH: 10, HiS: 255, HiV: 255},
		{LoH: 170, LoS: 100, LoV: 100, HiH: 180, HiS: 255, HiV: 255},
		{LoH: 15, LoS: 150, LoV: 150, HiH: 35, HiS: 255, HiV: 255},
	}
	smokeBand  = raster.Band{LoH: 0, LoS: 0, LoV: 100, HiH: 180, HiS: 30, HiV: 200}
	burnedBand = raster.Band{LoH: 0, LoS: 0, LoV: 0, HiH: 180, HiS: 255, HiV: 80}

	cropBand  = raster.Band{LoH: 25, LoS: 30, LoV: 30, HiH: 95, HiS: 255, HiV: 255}
	waterBand = raster.Band{LoH: 100, LoS: 50, LoV: 50, HiH: 130, HiS: 255, HiV: 255}
)

// Structuring element sizes and pipeline knobs that are not shared
// between classes.
const (
	deforestationSE = 5 // closing and opening
	miningSE        = 7 // closing only

	cannyLow  = 50
	cannyHigh = 150

	laplacianCutoff = 30
)

// Minimum region area gates in pixels. A region must be strictly larger
// than the gate to be scored at all.
var minArea = [numClasses]int{
	Deforestation:  1000,
	Mining:         2000,
	ForestFire:     500,
	Agriculture:    1500,
	UrbanExpansion: 2500,
	WaterBody:      1000,
}

// aggregate holds the constants of the saturating per-class aggregate
// confidence formula min(cap, count*slope + base), with empty the value
// reported when a run finds nothing.
type aggregate struct {
	slope, base, cap, empty int
}

// aggregates is the single source of truth for every per-class
// aggregate formula, so the constants cannot drift between detectors.
var aggregates = [numClasses]aggregate{
	Deforestation:  {slope: 15, base: 45, cap: 90, empty: 25},
	Mining:         {slope: 20, base: 40, cap: 85, empty: 30},
	ForestFire:     {slope: 25, base: 35, cap: 90, empty: 20},
	Agriculture:    {slope: 12, base: 30, cap: 75, empty: 20},
	UrbanExpansion: {slope: 18, base: 25, cap: 70, empty: 15},
	WaterBody:      {slope: 25, base: 30, cap: 80, empty: 20},
}

// General-mode aggregate constants: min(90, totalCount*8 + 50), with 35
// when the union of all six detectors is empty.
const (
	generalSlope = 8
	generalBase  = 50
	generalCap   = 90
	generalEmpty = 35
)

// AggregateConfidence computes the whole-frame confidence for one class
// from its detection count.
func AggregateConfidence(c Class, count int) float64 {
	a := aggregates[c]
	if count == 0 {
		return float64(a.empty)
	}
	return math.Min(float64(a.cap), float64(count*a.slope+a.base))
}

// GeneralConfidence computes the whole-frame confidence for a general
// run from the total detection count across all classes.
func GeneralConfidence(total int) float64 {
	if total == 0 {
		return generalEmpty
	}
	return math.Min(generalCap, float64(total*generalSlope+generalBase))
}
