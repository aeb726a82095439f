package engine

import (
	"github.com/sushil-thakur/enviro-segment/internal/detection"
	"github.com/sushil-thakur/enviro-segment/internal/raster"
)

// Size is the source frame's pixel dimensions.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Result is the aggregate output of one segmentation run, serialized
// to stdout (CLI) or the response body (serve mode).
//
// On failure Error is set, Detections is empty (but present, never
// null), confidence and size are zero, and ModelUsed is "error".
type Result struct {
	Detections      []detection.Detection `json:"detections"`
	Confidence      float64               `json:"confidence"`
	ProcessingTime  float64               `json:"processing_time"`
	ImageSize       Size                  `json:"image_size"`
	ModelUsed       string                `json:"model_used"`
	ResultImagePath string                `json:"resultImagePath"`
	ImageStats      *raster.Stats         `json:"image_stats,omitempty"`
	Error           string                `json:"error,omitempty"`
}

// FailureResult converts an error into the failure result shape the
// platform expects. The run is all-or-nothing: no partial detections
// survive a failure.
func FailureResult(err error) *Result {
	return &Result{
		Detections: []detection.Detection{},
		ModelUsed:  "error",
		Error:      err.Error(),
	}
}
