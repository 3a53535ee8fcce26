package shatter

import (
	"image"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	r := New()
	p := r.BlockParams()

	if p.Size != 8 {
		t.Errorf("block size = %d, want 8", p.Size)
	}
	if p.Thresholds != DefaultThresholds() {
		t.Errorf("thresholds = %+v, want defaults", p.Thresholds)
	}
	if p.Fallback != DefaultFallback {
		t.Errorf("fallback = %v, want %v", p.Fallback, DefaultFallback)
	}
	if p.Field != DefaultField() {
		t.Errorf("field = %+v, want defaults", p.Field)
	}
	if p.Rand == nil {
		t.Error("rand should be created by New")
	}
	if p.Workers != 1 {
		t.Errorf("workers = %d, want 1", p.Workers)
	}
	if r.Shading() != DefaultShading() {
		t.Errorf("shading = %+v, want defaults", r.Shading())
	}
	if r.Background() != Transparent {
		t.Errorf("background = %v, want transparent", r.Background())
	}
	if got := r.Region(image.Rect(0, 0, 10, 30)); got != image.Rect(0, 0, 10, 15) {
		t.Errorf("region = %v, want top half", got)
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	r := New(
		WithBlockSize(0),
		WithRegionHeightPercent(0),
		WithRegionHeightPercent(150),
		WithRand(nil),
		WithWorkers(-3),
	)
	p := r.BlockParams()

	if p.Size != 8 {
		t.Errorf("block size = %d, want default 8", p.Size)
	}
	if got := r.Region(image.Rect(0, 0, 10, 10)).Dy(); got != 5 {
		t.Errorf("region height = %d, want default 5", got)
	}
	if p.Rand == nil {
		t.Error("WithRand(nil) cleared the random source")
	}
	if p.Workers != 1 {
		t.Errorf("workers = %d, want 1", p.Workers)
	}
}

func TestOptionsMultiple(t *testing.T) {
	f := DefaultField()
	f.Lift = 0
	s := Shading{MaxDepth: 100, MinOpacity: 0.5, MaxDarken: 0.2}

	r := New(
		WithBlockSize(12),
		WithRegionHeightPercent(100),
		WithThresholds(Thresholds{Alpha: 10, Dark: 5}),
		WithDefaultColor(ColorSample{R: 1, G: 2, B: 3}),
		WithBackground(White),
		WithField(f),
		WithShading(s),
		WithRand(constRand(0.2)),
		WithWorkers(3),
	)
	p := r.BlockParams()

	if p.Size != 12 || p.Workers != 3 {
		t.Errorf("size=%d workers=%d, want 12 and 3", p.Size, p.Workers)
	}
	if p.Thresholds != (Thresholds{Alpha: 10, Dark: 5}) {
		t.Errorf("thresholds = %+v", p.Thresholds)
	}
	if p.Fallback != (ColorSample{R: 1, G: 2, B: 3}) {
		t.Errorf("fallback = %v", p.Fallback)
	}
	if p.Field.Lift != 0 || r.Shading() != s || r.Background() != White {
		t.Errorf("field/shading/background not applied")
	}
	if p.Rand.Float64() != 0.2 {
		t.Error("injected rand not used")
	}
	if got := r.Region(image.Rect(0, 0, 10, 10)); got.Dy() != 10 {
		t.Errorf("region = %v, want whole image", got)
	}
}
