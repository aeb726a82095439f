package detection

import (
	"image"
	"image/color"
	"testing"
)

func TestDetectMining_RockRegion(t *testing.T) {
	// A compact desaturated rock patch on water-dark terrain. The patch
	// is featureless inside, so only the aspect and extent bonuses apply.
	in := synthInput(300, 300, color.NRGBA{0, 0, 255, 255},
		patch{100, 100, 100, 80, color.NRGBA{150, 150, 150, 255}},
	)

	dets, _, err := Run(in, Mining)
	if err != nil {
		t.Fatal(err)
	}
	if len(dets) != 1 {
		t.Fatalf("got %d detections, want 1", len(dets))
	}

	d := dets[0]
	if d.Area != 8000 {
		t.Errorf("area: got %d, want 8000", d.Area)
	}
	if d.Severity != SeverityLow {
		t.Errorf("severity: got %v, want low", d.Severity)
	}
	if d.AspectRatio == nil || *d.AspectRatio != 1.25 {
		t.Errorf("aspect ratio: got %v, want 1.25", d.AspectRatio)
	}
	if d.Confidence < 75 || d.Confidence > 90 {
		t.Errorf("confidence: got %v, want within [75, 90]", d.Confidence)
	}
	if d.EdgeDensity == nil {
		t.Error("edge density missing")
	}
}

func TestDetectMining_BenchedSiteIsCritical(t *testing.T) {
	// A large extraction site with bench structure: alternating bright
	// and dark rock stripes give the dense edge response that, combined
	// with the area, marks the site critical.
	img := image.NewNRGBA(image.Rect(0, 0, 300, 250))
	for y := 0; y < 250; y++ {
		for x := 0; x < 300; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 255, 0, 255})
		}
	}
	bright := color.NRGBA{255, 255, 255, 255}
	dark := color.NRGBA{80, 80, 80, 255}
	for y := 15; y < 235; y++ {
		for x := 25; x < 275; x++ {
			c := bright
			if (x/4)%2 == 1 {
				c = dark
			}
			img.SetNRGBA(x, y, c)
		}
	}

	dets, conf, err := Run(NewInput(img), Mining)
	if err != nil {
		t.Fatal(err)
	}
	if len(dets) != 1 {
		t.Fatalf("got %d detections, want 1", len(dets))
	}

	d := dets[0]
	if d.Area != 55000 {
		t.Errorf("area: got %d, want 55000", d.Area)
	}
	if d.Severity != SeverityCritical {
		t.Errorf("severity: got %v, want critical", d.Severity)
	}
	if d.Confidence != 90 { // base 50 + aspect 15 + extent 10 + edges 15
		t.Errorf("confidence: got %v, want 90", d.Confidence)
	}
	if d.EdgeDensity == nil || *d.EdgeDensity <= 0.15 {
		t.Errorf("edge density: got %v, want > 0.15", d.EdgeDensity)
	}
	if conf != 60 { // one detection: min(85, 1*20+40)
		t.Errorf("aggregate: got %v, want 60", conf)
	}
}

func TestDetectMining_AreaGate(t *testing.T) {
	// 50x40 = 2000 pixels sits exactly on the gate.
	in := synthInput(200, 200, color.NRGBA{0, 0, 255, 255},
		patch{50, 50, 50, 40, color.NRGBA{150, 150, 150, 255}},
	)
	dets, conf, err := Run(in, Mining)
	if err != nil {
		t.Fatal(err)
	}
	if len(dets) != 0 {
		t.Errorf("got %d detections, want 0", len(dets))
	}
	if conf != 30 {
		t.Errorf("empty aggregate: got %v, want 30", conf)
	}
}
