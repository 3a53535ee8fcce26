package shatter

import (
	"image"
	"image/color"
)

// Surface is a drawing target for the effect.
//
// Implementations must treat ClearRect as a plain overwrite and FillRect as
// a source-over fill of a w×h rectangle centred on the origin of m's local
// space, touching nothing outside clip.
type Surface interface {
	Bounds() image.Rectangle
	ClearRect(r image.Rectangle, c color.NRGBA)
	FillRect(m Matrix, w, h float64, c color.NRGBA, opacity float64, clip image.Rectangle)
}

// TopRegion returns the band of b covering the top percent of its height,
// rounded down to whole rows. percent is clamped to [0, 100].
func TopRegion(b image.Rectangle, percent float64) image.Rectangle {
	percent = min(max(percent, 0), 100)
	h := int(float64(b.Dy()) * percent / 100)
	return image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+h)
}
