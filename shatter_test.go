package shatter

import (
	"image"
	"image/color"
	"testing"
)

// constRand returns the same draw every time, which zeroes jitter and
// keeps rotation and size variation at their centre values.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

// seqRand cycles through a fixed list of draws.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func solid(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// gradientPixmap builds an opaque image whose colors vary by position.
func gradientPixmap(w, h int) *Pixmap {
	pm := NewPixmap(w, h)
	for y := range h {
		for x := range w {
			pm.SetPixel(x, y, solid(uint8(60+x*4%190), uint8(60+y*5%190), 120))
		}
	}
	return pm
}

// traceSurface records fills in order and forwards them to a pixmap.
type traceSurface struct {
	*Pixmap
	fills []tracedFill
	clear []image.Rectangle
}

type tracedFill struct {
	center  Point
	w, h    float64
	color   color.NRGBA
	opacity float64
}

func (s *traceSurface) ClearRect(r image.Rectangle, c color.NRGBA) {
	s.clear = append(s.clear, r)
	s.Pixmap.ClearRect(r, c)
}

func (s *traceSurface) FillRect(m Matrix, w, h float64, c color.NRGBA, opacity float64, clip image.Rectangle) {
	s.fills = append(s.fills, tracedFill{center: Pt(m.C, m.F), w: w, h: h, color: c, opacity: opacity})
	s.Pixmap.FillRect(m, w, h, c, opacity, clip)
}

func TestTopRegion(t *testing.T) {
	b := image.Rect(0, 0, 16, 15)
	tests := []struct {
		percent float64
		want    image.Rectangle
	}{
		{50, image.Rect(0, 0, 16, 7)},
		{100, image.Rect(0, 0, 16, 15)},
		{150, image.Rect(0, 0, 16, 15)},
		{0, image.Rect(0, 0, 16, 0)},
		{-5, image.Rect(0, 0, 16, 0)},
	}
	for _, tt := range tests {
		if got := TopRegion(b, tt.percent); got != tt.want {
			t.Errorf("TopRegion(%v, %v) = %v, want %v", b, tt.percent, got, tt.want)
		}
	}
}
