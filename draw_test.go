package shatter

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestShadingOpacityBounds(t *testing.T) {
	s := DefaultShading()
	for _, depth := range []float64{-10, 0, 1, 50, 199.9, 200, 1e9, math.Inf(1), math.NaN()} {
		op := s.Opacity(depth)
		if op < 0.3 || op > 1 {
			t.Errorf("Opacity(%v) = %v, outside [0.3, 1]", depth, op)
		}
	}
}

func TestShadingValues(t *testing.T) {
	s := DefaultShading()
	tests := []struct {
		depth      float64
		opacity    float64
		brightness float64
	}{
		{0, 1, 1},
		{100, 0.65, 0.8},
		{200, 0.3, 0.6},
		{400, 0.3, 0.6},
	}
	for _, tt := range tests {
		if got := s.Opacity(tt.depth); !almostEqual(got, tt.opacity) {
			t.Errorf("Opacity(%v) = %v, want %v", tt.depth, got, tt.opacity)
		}
		if got := s.Brightness(tt.depth); !almostEqual(got, tt.brightness) {
			t.Errorf("Brightness(%v) = %v, want %v", tt.depth, got, tt.brightness)
		}
	}
}

func TestSortByDepth(t *testing.T) {
	blocks := []Block{
		{OriginalX: 0, Depth: 3},
		{OriginalX: 1, Depth: 10},
		{OriginalX: 2, Depth: 3},
		{OriginalX: 3, Depth: 0},
		{OriginalX: 4, Depth: 7},
	}
	SortByDepth(blocks)

	wantOrder := []int{1, 4, 0, 2, 3}
	for i, b := range blocks {
		if b.OriginalX != wantOrder[i] {
			t.Fatalf("position %d holds block %d, want %d", i, b.OriginalX, wantOrder[i])
		}
	}
}

func TestDrawBlocksOrderAndShading(t *testing.T) {
	blocks := []Block{
		{X: 0, Y: 0, Width: 4, Height: 4, Color: solid(200, 100, 50), SizeVariation: 1, Depth: 300},
		{X: 4, Y: 4, Width: 4, Height: 4, Color: solid(200, 100, 50), SizeVariation: 1.1, Depth: 0},
	}
	dst := &traceSurface{Pixmap: NewPixmap(16, 16)}

	DrawBlocks(dst, blocks, dst.Bounds(), DefaultShading())

	if len(dst.fills) != 2 {
		t.Fatalf("got %d fills, want 2", len(dst.fills))
	}
	far, near := dst.fills[0], dst.fills[1]
	if far.center != Pt(2, 2) || near.center != Pt(6, 6) {
		t.Errorf("centres = %v, %v, want (2,2), (6,6)", far.center, near.center)
	}
	if !almostEqual(far.opacity, 0.3) || !almostEqual(near.opacity, 1) {
		t.Errorf("opacities = %v, %v, want 0.3, 1", far.opacity, near.opacity)
	}
	if far.color != (color.NRGBA{R: 120, G: 60, B: 30, A: 255}) {
		t.Errorf("far color = %v, want darkened by 40%%", far.color)
	}
	if !almostEqual(near.w, 4.4) || !almostEqual(near.h, 4.4) {
		t.Errorf("near size = %vx%v, want 4.4x4.4", near.w, near.h)
	}
}

func TestDrawBlocksSkipsEmptyBlocks(t *testing.T) {
	dst := &traceSurface{Pixmap: NewPixmap(4, 4)}
	DrawBlocks(dst, []Block{{Width: 0, Height: 4, SizeVariation: 1}}, image.Rect(0, 0, 4, 4), DefaultShading())
	if len(dst.fills) != 0 {
		t.Errorf("zero-width block produced %d fills", len(dst.fills))
	}
}
