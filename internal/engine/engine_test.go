package engine

import (
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sushil-thakur/enviro-segment/internal/detection"
)

func TestRun_WaterModel(t *testing.T) {
	imagePath := writeLakeFrame(t)
	outDir := t.TempDir()

	eng := New(Options{})
	result, err := eng.Run(Params{
		ImagePath: imagePath,
		OutputDir: outDir,
		ModelType: "water_body",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.ModelUsed != "Enhanced_water_body" {
		t.Errorf("model_used: got %q", result.ModelUsed)
	}
	if len(result.Detections) != 1 {
		t.Fatalf("got %d detections, want 1", len(result.Detections))
	}
	d := result.Detections[0]
	if d.Class != detection.WaterBody || d.Confidence != 75 {
		t.Errorf("detection: got class %v confidence %v", d.Class, d.Confidence)
	}
	if result.Confidence != 55 {
		t.Errorf("aggregate: got %v, want 55", result.Confidence)
	}
	if result.ImageSize != (Size{Width: 200, Height: 150}) {
		t.Errorf("image_size: got %+v", result.ImageSize)
	}
	if result.ProcessingTime < 0 {
		t.Errorf("processing_time: got %v", result.ProcessingTime)
	}
	if result.ImageStats == nil || result.ImageStats.StdIntensity == 0 {
		t.Errorf("image_stats: got %+v", result.ImageStats)
	}

	// The annotated frame lands in outputDir under the contract name.
	base := filepath.Base(result.ResultImagePath)
	if !strings.HasPrefix(base, "segmentation_result_water_body_") || !strings.HasSuffix(base, ".jpg") {
		t.Errorf("result image name: got %q", base)
	}
	if _, err := os.Stat(result.ResultImagePath); err != nil {
		t.Errorf("result image missing: %v", err)
	}
	if filepath.Dir(result.ResultImagePath) != outDir {
		t.Errorf("result image dir: got %q, want %q", filepath.Dir(result.ResultImagePath), outDir)
	}
}

func TestRun_DefaultsToGeneral(t *testing.T) {
	imagePath := writeLakeFrame(t)

	eng := New(Options{})
	result, err := eng.Run(Params{ImagePath: imagePath, OutputDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	if result.ModelUsed != "Enhanced_general" {
		t.Errorf("model_used: got %q, want Enhanced_general", result.ModelUsed)
	}
}

func TestRun_UnknownModelFallsBackToGeneral(t *testing.T) {
	imagePath := writeLakeFrame(t)

	eng := New(Options{})
	result, err := eng.Run(Params{
		ImagePath: imagePath,
		OutputDir: t.TempDir(),
		ModelType: "glacier_melt",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.ModelUsed != "Enhanced_glacier_melt" {
		t.Errorf("model_used: got %q", result.ModelUsed)
	}
	// The general union still finds the lake.
	found := false
	for _, d := range result.Detections {
		if d.Class == detection.WaterBody {
			found = true
		}
	}
	if !found {
		t.Error("general fallback missed the water region")
	}
}

func TestRun_Deterministic(t *testing.T) {
	imagePath := writeLakeFrame(t)
	eng := New(Options{})

	first, err := eng.Run(Params{ImagePath: imagePath, OutputDir: t.TempDir(), ModelType: "general"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := eng.Run(Params{ImagePath: imagePath, OutputDir: t.TempDir(), ModelType: "general"})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first.Detections, second.Detections) {
		t.Error("detections differ between identical runs")
	}
	if first.Confidence != second.Confidence {
		t.Errorf("confidence differs: %v vs %v", first.Confidence, second.Confidence)
	}
}

func TestRun_ParameterValidation(t *testing.T) {
	eng := New(Options{})
	tests := []struct {
		name   string
		params Params
	}{
		{"missing image path", Params{OutputDir: "/tmp"}},
		{"missing output dir", Params{ImagePath: "/tmp/a.png"}},
		{"empty", Params{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Run(tt.params)
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Errorf("got %v, want InvalidInputError", err)
			}
		})
	}
}

func TestRun_MissingImage(t *testing.T) {
	eng := New(Options{})
	_, err := eng.Run(Params{
		ImagePath: filepath.Join(t.TempDir(), "nope.png"),
		OutputDir: t.TempDir(),
	})
	var load *ImageLoadError
	if !errors.As(err, &load) {
		t.Fatalf("got %v, want ImageLoadError", err)
	}
}

func TestRun_UnwritableOutputDir(t *testing.T) {
	imagePath := writeLakeFrame(t)

	eng := New(Options{})
	_, err := eng.Run(Params{
		ImagePath: imagePath,
		OutputDir: filepath.Join(t.TempDir(), "does", "not", "exist"),
	})
	var write *OutputWriteError
	if !errors.As(err, &write) {
		t.Fatalf("got %v, want OutputWriteError", err)
	}
}

func TestFailureResult(t *testing.T) {
	r := FailureResult(&InvalidInputError{Reason: "imagePath is required"})

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)

	// Detections must serialize as an empty array, never null.
	if !strings.Contains(s, `"detections":[]`) {
		t.Errorf("detections not an empty array: %s", s)
	}
	if !strings.Contains(s, `"model_used":"error"`) {
		t.Errorf("model_used: %s", s)
	}
	if !strings.Contains(s, `"error":"invalid input: imagePath is required"`) {
		t.Errorf("error message: %s", s)
	}
	if strings.Contains(s, "image_stats") {
		t.Errorf("image_stats should be omitted on failure: %s", s)
	}
}

// writeLakeFrame writes a 200x150 frame with one 40x40 water-blue region
// on black and returns its path.
func writeLakeFrame(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 200, 150))
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 255})
		}
	}
	for y := 40; y < 80; y++ {
		for x := 50; x < 90; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
		}
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}
