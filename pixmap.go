package shatter

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Pixmap is a rectangular buffer of non-premultiplied RGBA8 pixels.
// It is both the immutable source image of an effect and the default
// drawing surface.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel, straight alpha
}

var (
	_ Surface    = (*Pixmap)(nil)
	_ draw.Image = (*Pixmap)(nil)
)

// NewPixmap creates a fully transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA, straight alpha).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{width: p.width, height: p.height, data: make([]uint8, len(p.data))}
	copy(c.data, p.data)
	return c
}

// SetPixel sets the color of a single pixel. Out of bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel, transparent when out of bounds.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.NRGBA) {
	p.ClearRect(p.Bounds(), c)
}

// ClearRect replaces every pixel of r (clipped to the pixmap) with c.
// No blending takes place.
func (p *Pixmap) ClearRect(r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(p.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.data[(y*p.width+r.Min.X)*4 : (y*p.width+r.Max.X)*4]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

// Average returns the mean color of the pixels in r (clipped to the pixmap).
// RGB channels are floored; alpha is the exact mean. n is the number of
// pixels averaged; when it is zero every other result is zero.
func (p *Pixmap) Average(r image.Rectangle) (rgb ColorSample, alpha float64, n int) {
	r = r.Intersect(p.Bounds())
	n = r.Dx() * r.Dy()
	if n == 0 {
		return ColorSample{}, 0, 0
	}

	var sr, sg, sb, sa uint64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.data[(y*p.width+r.Min.X)*4 : (y*p.width+r.Max.X)*4]
		for i := 0; i < len(row); i += 4 {
			sr += uint64(row[i+0])
			sg += uint64(row[i+1])
			sb += uint64(row[i+2])
			sa += uint64(row[i+3])
		}
	}

	cnt := uint64(n)
	rgb = ColorSample{R: uint8(sr / cnt), G: uint8(sg / cnt), B: uint8(sb / cnt)}
	return rgb, float64(sa) / float64(n), n
}

// FillRect fills a w×h rectangle centred on the origin of the local space
// described by m. The color is composited source-over with its alpha scaled
// by opacity. Only pixels inside clip are touched.
func (p *Pixmap) FillRect(m Matrix, w, h float64, c color.NRGBA, opacity float64, clip image.Rectangle) {
	if w <= 0 || h <= 0 || opacity <= 0 || math.IsNaN(opacity) {
		return
	}
	opacity = math.Min(opacity, 1)

	corners := m.rectCorners(w, h)
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, pt := range corners[1:] {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	bb := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	r := bb.Intersect(clip).Intersect(p.Bounds())
	if r.Empty() {
		return
	}

	// Coverage is rasterized over the whole bounding box so the path never
	// leaves the rasterizer's area, then only r is composited.
	ras := vector.NewRasterizer(bb.Dx(), bb.Dy())
	ox, oy := float64(bb.Min.X), float64(bb.Min.Y)
	ras.MoveTo(float32(corners[0].X-ox), float32(corners[0].Y-oy))
	for _, pt := range corners[1:] {
		ras.LineTo(float32(pt.X-ox), float32(pt.Y-oy))
	}
	ras.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, bb.Dx(), bb.Dy()))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	src := image.NewUniform(color.NRGBA{
		R: c.R, G: c.G, B: c.B,
		A: uint8(math.Round(opacity * float64(c.A))),
	})
	draw.DrawMask(p.view(), r, src, image.Point{}, mask, r.Min.Sub(bb.Min), draw.Over)
}

// view returns an image.NRGBA sharing the pixmap's buffer.
func (p *Pixmap) view() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage converts the pixmap to a freshly allocated image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image. The result is rebased so the
// image's top-left pixel becomes (0, 0).
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < pm.height; y++ {
			start := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*pm.width*4:(y+1)*pm.width*4], nrgba.Pix[start:start+pm.width*4])
		}
		return pm
	}
	draw.Draw(pm.view(), pm.Bounds(), img, bounds.Min, draw.Src)
	return pm
}

// Scale returns a copy resampled with Catmull-Rom so that its width is at
// most maxWidth, preserving aspect ratio. It returns p itself when no
// downscaling is needed.
func (p *Pixmap) Scale(maxWidth int) *Pixmap {
	if maxWidth <= 0 || p.width <= maxWidth {
		return p
	}
	h := max(1, int(math.Round(float64(p.height)*float64(maxWidth)/float64(p.width))))
	dst := NewPixmap(maxWidth, h)
	draw.CatmullRom.Scale(dst.view(), dst.Bounds(), p.view(), p.Bounds(), draw.Src, nil)
	return dst
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
