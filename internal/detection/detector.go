package detection

import (
	"errors"
	"image"
	"sync"

	"github.com/sushil-thakur/enviro-segment/internal/raster"
)

// ErrNoPipeline is returned when a Class value has no detector mapped.
// Every known class is mapped, so seeing this means a caller passed an
// out-of-range value; it exists as a defensive check, not a real code
// path.
var ErrNoPipeline = errors.New("no detector pipeline for class")

// Input carries the derived planes every detector reads: the HSV planes
// for band masking and the intensity plane for edge and texture
// responses. All fields are read-only after NewInput returns, so one
// Input may be shared by concurrently running detectors.
type Input struct {
	HSV    *raster.HSV
	Gray   *image.Gray
	Width  int
	Height int
}

// NewInput derives the detector planes from a source frame.
func NewInput(img image.Image) *Input {
	hsv := raster.ToHSV(img)
	return &Input{
		HSV:    hsv,
		Gray:   raster.Grayscale(img),
		Width:  hsv.W,
		Height: hsv.H,
	}
}

// Run executes the detector pipeline for a single class and returns its
// detections together with the class aggregate confidence.
func Run(in *Input, c Class) ([]Detection, float64, error) {
	if !c.Valid() {
		return nil, 0, ErrNoPipeline
	}
	dets := c.detect(in)
	return dets, AggregateConfidence(c, len(dets)), nil
}

// RunGeneral executes all six detector pipelines over the same frame
// and concatenates their outputs in fixed class order.
//
// The pipelines only read the shared Input, so they run concurrently,
// one goroutine per class; results land in a per-class slot and are
// joined afterwards, keeping the output order deterministic.
func RunGeneral(in *Input) ([]Detection, float64) {
	var perClass [numClasses][]Detection

	var wg sync.WaitGroup
	for _, c := range Classes {
		wg.Add(1)
		go func(c Class) {
			defer wg.Done()
			perClass[c] = c.detect(in)
		}(c)
	}
	wg.Wait()

	all := make([]Detection, 0)
	for _, c := range Classes {
		all = append(all, perClass[c]...)
	}
	return all, GeneralConfidence(len(all))
}

// detect dispatches to the class pipeline. The switch covers every
// member of the enum; extending Class without extending this switch is
// caught by the defensive nil return in Run's callers' tests.
func (c Class) detect(in *Input) []Detection {
	switch c {
	case Deforestation:
		return detectDeforestation(in)
	case Mining:
		return detectMining(in)
	case ForestFire:
		return detectForestFire(in)
	case Agriculture:
		return detectAgriculture(in)
	case UrbanExpansion:
		return detectUrbanExpansion(in)
	case WaterBody:
		return detectWaterBodies(in)
	}
	return nil
}
