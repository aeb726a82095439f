package detection

import (
	"encoding/json"
	"fmt"
	"image"
	"math"
)

// Class identifies one of the six environmental phenomenon detectors.
//
// The zero value is Deforestation. Using a fixed enum (rather than
// dispatching on strings) gives compile-time coverage checking when the
// general mode iterates over all classes.
type Class int

const (
	Deforestation Class = iota
	Mining
	ForestFire
	Agriculture
	UrbanExpansion
	WaterBody

	numClasses
)

// Classes lists every detector class in the fixed order general mode
// concatenates their outputs.
var Classes = [numClasses]Class{
	Deforestation,
	Mining,
	ForestFire,
	Agriculture,
	UrbanExpansion,
	WaterBody,
}

var classLabels = [numClasses]string{
	Deforestation:  "deforestation",
	Mining:         "mining",
	ForestFire:     "forest_fire",
	Agriculture:    "agriculture",
	UrbanExpansion: "urban_expansion",
	WaterBody:      "water_body",
}

// String returns the wire label of the class ("deforestation",
// "mining", "forest_fire", "agriculture", "urban_expansion",
// "water_body").
func (c Class) String() string {
	if c < 0 || c >= numClasses {
		return fmt.Sprintf("class(%d)", int(c))
	}
	return classLabels[c]
}

// Valid reports whether c is one of the six known classes.
func (c Class) Valid() bool {
	return c >= 0 && c < numClasses
}

// MarshalJSON encodes the class as its wire label.
func (c Class) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown class %d", int(c))
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a wire label back into a Class.
func (c *Class) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseClass(s)
	if !ok {
		return fmt.Errorf("unknown detection class %q", s)
	}
	*c = parsed
	return nil
}

// ParseClass maps a model-type string to a Class. Besides the full wire
// labels it accepts the short aliases "urban" and "water" that the
// platform's older callers still send.
func ParseClass(s string) (Class, bool) {
	switch s {
	case "deforestation":
		return Deforestation, true
	case "mining":
		return Mining, true
	case "forest_fire":
		return ForestFire, true
	case "agriculture":
		return Agriculture, true
	case "urban_expansion", "urban":
		return UrbanExpansion, true
	case "water_body", "water":
		return WaterBody, true
	}
	return 0, false
}

// Severity is the ordinal risk bucket assigned to a detection:
// low < medium < high < critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// BoundingBox is an axis-aligned box in pixel coordinates. It
// serializes as the four-element array [x, y, width, height] the
// consuming platform expects.
type BoundingBox struct {
	X, Y, W, H int
}

// Rect returns the box as a half-open image.Rectangle for mask
// arithmetic.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// MarshalJSON encodes the box as [x, y, w, h].
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{b.X, b.Y, b.W, b.H})
}

// UnmarshalJSON decodes [x, y, w, h].
func (b *BoundingBox) UnmarshalJSON(data []byte) error {
	var a [4]int
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	b.X, b.Y, b.W, b.H = a[0], a[1], a[2], a[3]
	return nil
}

// Point is a pixel coordinate. It serializes as [x, y].
type Point struct {
	X, Y int
}

// MarshalJSON encodes the point as [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON decodes [x, y].
func (p *Point) UnmarshalJSON(data []byte) error {
	var a [2]int
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	p.X, p.Y = a[0], a[1]
	return nil
}

// Detection is one scored, classified, located finding. Created once by
// a scorer and immutable afterwards.
//
// The optional fields carry class-specific extras: vegetation_loss for
// deforestation, aspect_ratio/edge_density for mining, fire_type and
// the three indicator ratios for forest fire. Classes with constant
// scoring (agriculture, urban expansion, water bodies) emit none.
type Detection struct {
	Class      Class       `json:"class"`
	Confidence float64     `json:"confidence"`
	BBox       BoundingBox `json:"bbox"`
	Area       int         `json:"area"`
	Center     Point       `json:"center"`
	Severity   Severity    `json:"severity"`

	VegetationLoss *float64 `json:"vegetation_loss,omitempty"`
	AspectRatio    *float64 `json:"aspect_ratio,omitempty"`
	EdgeDensity    *float64 `json:"edge_density,omitempty"`
	FireType       string   `json:"fire_type,omitempty"`
	ActiveRatio    *float64 `json:"active_fire_ratio,omitempty"`
	SmokeRatio     *float64 `json:"smoke_ratio,omitempty"`
	BurnedRatio    *float64 `json:"burned_ratio,omitempty"`
}

// round2 rounds to two decimals; the contract carries confidence and
// percentage fields at that precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round3 rounds to three decimals, used for the indicator ratios.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// ptr returns a pointer to a rounded float for the optional JSON
// fields.
func ptr(v float64) *float64 {
	return &v
}
