package shatter

import (
	"cmp"
	"image"
	"math"
	"slices"
)

// Shading maps a block's depth to its opacity and darkening.
type Shading struct {
	MaxDepth   float64 // depth at which shading saturates
	MinOpacity float64 // opacity of fully saturated blocks
	MaxDarken  float64 // fraction of brightness removed at saturation
}

// DefaultShading returns 200 / 0.3 / 0.4.
func DefaultShading() Shading {
	return Shading{MaxDepth: 200, MinOpacity: 0.3, MaxDarken: 0.4}
}

// normalized returns depth/MaxDepth clamped to [0, 1].
func (s Shading) normalized(depth float64) float64 {
	if s.MaxDepth <= 0 || math.IsNaN(depth) {
		return 1
	}
	return min(max(depth/s.MaxDepth, 0), 1)
}

// Opacity returns MinOpacity + (1 - nd) * (1 - MinOpacity), which always
// lies in [MinOpacity, 1].
func (s Shading) Opacity(depth float64) float64 {
	nd := s.normalized(depth)
	return s.MinOpacity + (1-nd)*(1-s.MinOpacity)
}

// Brightness returns the color multiplier 1 - nd*MaxDarken.
func (s Shading) Brightness(depth float64) float64 {
	return 1 - s.normalized(depth)*s.MaxDarken
}

// SortByDepth orders blocks by descending depth, farthest first. Equal
// depths keep their grid order.
func SortByDepth(blocks []Block) {
	slices.SortStableFunc(blocks, func(a, b Block) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}

// DrawBlocks fills every block onto dst in slice order. Each block is
// translated to its displaced centre, rotated, scaled by its size
// variation and shaded by depth. Fills are clipped to clip.
func DrawBlocks(dst Surface, blocks []Block, clip image.Rectangle, s Shading) {
	for _, b := range blocks {
		drawBlock(dst, b, b.Center(), b.Rotation, b.SizeVariation, b.Depth, clip, s)
	}
}

func drawBlock(dst Surface, b Block, center Point, rotation, size, depth float64, clip image.Rectangle, s Shading) {
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	m := Translate(center.X, center.Y).Multiply(Rotate(rotation))
	// Averaged alpha only decides fallback; the fill itself is opaque
	// before opacity is applied.
	c := Darken(b.Color, s.Brightness(depth))
	c.A = 255
	dst.FillRect(m, float64(b.Width)*size, float64(b.Height)*size, c, s.Opacity(depth), clip)
}
