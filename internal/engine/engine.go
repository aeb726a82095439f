package engine

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/sushil-thakur/enviro-segment/internal/detection"
	"github.com/sushil-thakur/enviro-segment/internal/raster"
	"github.com/sushil-thakur/enviro-segment/internal/render"
)

const (
	// DefaultModelType is used when the caller omits modelType.
	DefaultModelType = "general"

	// DefaultJPEGQuality is the quality of the annotated result image
	// unless overridden via Options.
	DefaultJPEGQuality = 90
)

// Params are the invocation parameters, matching the JSON object the
// platform passes on the command line and to the serve endpoint.
type Params struct {
	ImagePath string `json:"imagePath"`
	OutputDir string `json:"outputDir"`
	ModelType string `json:"modelType"`
}

// Options configure an Engine.
type Options struct {
	// JPEGQuality of the annotated result image (1-100). Zero means
	// DefaultJPEGQuality.
	JPEGQuality int

	// Debug enables per-run diagnostics on the standard logger.
	Debug bool
}

// Engine runs segmentation invocations. It holds no per-run state; the
// only thing shared between runs is the read-only source image cache,
// so a single Engine is safe for concurrent use.
type Engine struct {
	cache       *raster.Cache
	jpegQuality int
	debug       bool
}

// New creates an Engine with an empty image cache.
func New(opts Options) *Engine {
	q := opts.JPEGQuality
	if q <= 0 {
		q = DefaultJPEGQuality
	}
	return &Engine{
		cache:       raster.NewCache(),
		jpegQuality: q,
		debug:       opts.Debug,
	}
}

// Run executes one segmentation invocation: load, detect, render,
// assemble. The returned error is always one of the package's error
// types; callers at the process boundary turn it into the failure
// result shape with FailureResult.
//
// Processing time covers the whole run, wall clock, including the image
// load and the result write.
func (e *Engine) Run(p Params) (*Result, error) {
	start := time.Now()

	if p.ImagePath == "" {
		return nil, &InvalidInputError{Reason: "imagePath is required"}
	}
	if p.OutputDir == "" {
		return nil, &InvalidInputError{Reason: "outputDir is required"}
	}
	model := p.ModelType
	if model == "" {
		model = DefaultModelType
	}

	img, err := e.cache.Load(p.ImagePath)
	if err != nil {
		return nil, &ImageLoadError{Path: p.ImagePath, Err: err}
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, &InvalidInputError{Reason: "image has zero size"}
	}

	in := detection.NewInput(img)

	var dets []detection.Detection
	var confidence float64
	if c, ok := detection.ParseClass(model); ok {
		dets, confidence, err = detection.Run(in, c)
		if err != nil {
			return nil, &UnsupportedClassError{Model: model}
		}
	} else {
		// Unknown model names run the full union, matching the
		// platform's historical fallback behavior.
		dets, confidence = detection.RunGeneral(in)
	}

	stats := raster.IntensityStats(in.Gray)
	if e.debug {
		log.Printf("model=%s detections=%d confidence=%.1f mean_intensity=%.1f",
			model, len(dets), confidence, stats.MeanIntensity)
	}

	name := fmt.Sprintf("segmentation_result_%s_%s.jpg", model, start.Format("20060102_150405"))
	outPath := filepath.Join(p.OutputDir, name)

	annotated := render.Annotate(img, dets)
	if err := render.Save(annotated, outPath, e.jpegQuality); err != nil {
		return nil, &OutputWriteError{Path: outPath, Err: err}
	}

	return &Result{
		Detections:      dets,
		Confidence:      confidence,
		ProcessingTime:  time.Since(start).Seconds(),
		ImageSize:       Size{Width: bounds.Dx(), Height: bounds.Dy()},
		ModelUsed:       "Enhanced_" + model,
		ResultImagePath: outPath,
		ImageStats:      &stats,
	}, nil
}
