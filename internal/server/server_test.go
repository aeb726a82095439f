package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sushil-thakur/enviro-segment/internal/engine"
)

func TestHealthz(t *testing.T) {
	srv := New(engine.New(engine.Options{}))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"status":"ok"}` {
		t.Errorf("body: got %s", got)
	}
}

func TestSegment_Success(t *testing.T) {
	imagePath := writeGreenFrame(t)
	outDir := t.TempDir()

	body, _ := json.Marshal(engine.Params{
		ImagePath: imagePath,
		OutputDir: outDir,
		ModelType: "agriculture",
	})

	srv := New(engine.New(engine.Options{}))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/segment", strings.NewReader(string(body)))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var result engine.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.ModelUsed != "Enhanced_agriculture" {
		t.Errorf("model_used: got %q", result.ModelUsed)
	}
	if len(result.Detections) != 1 {
		t.Errorf("got %d detections, want 1", len(result.Detections))
	}
	if result.Error != "" {
		t.Errorf("unexpected error field: %q", result.Error)
	}
}

func TestSegment_MalformedBody(t *testing.T) {
	srv := New(engine.New(engine.Options{}))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/segment", strings.NewReader("{not json"))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}

	var result engine.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.ModelUsed != "error" || result.Error == "" {
		t.Errorf("failure shape: model_used=%q error=%q", result.ModelUsed, result.Error)
	}
	if result.Detections == nil || len(result.Detections) != 0 {
		t.Errorf("detections: got %v, want empty array", result.Detections)
	}
}

func TestSegment_MissingImage(t *testing.T) {
	body, _ := json.Marshal(engine.Params{
		ImagePath: filepath.Join(t.TempDir(), "nope.png"),
		OutputDir: t.TempDir(),
	})

	srv := New(engine.New(engine.Options{}))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/segment", strings.NewReader(string(body)))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestSegment_WriteFailureIsServerError(t *testing.T) {
	body, _ := json.Marshal(engine.Params{
		ImagePath: writeGreenFrame(t),
		OutputDir: filepath.Join(t.TempDir(), "missing", "dir"),
	})

	srv := New(engine.New(engine.Options{}))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/segment", strings.NewReader(string(body)))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
}

func TestSegment_MethodNotAllowed(t *testing.T) {
	srv := New(engine.New(engine.Options{}))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/segment", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rec.Code)
	}
}

// writeGreenFrame writes a 120x120 frame with a 45x45 crop-green block
// on black and returns its path.
func writeGreenFrame(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 120, 120))
	for y := 0; y < 120; y++ {
		for x := 0; x < 120; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 255})
		}
	}
	for y := 20; y < 65; y++ {
		for x := 20; x < 65; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 255, 0, 255})
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
