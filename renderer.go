package shatter

import (
	"errors"
	"image"
	"image/color"
)

// Apply errors.
var (
	// ErrNoImage is returned by Apply when no source image is given.
	ErrNoImage = errors.New("shatter: no source image")

	// ErrNoSurface is returned by Apply when no drawing surface is given.
	ErrNoSurface = errors.New("shatter: no drawing surface")
)

// Renderer runs the block displacement effect. A Renderer owns its random
// source, so a single Renderer must not be used from several goroutines
// at once.
type Renderer struct {
	opts options
}

// New creates a Renderer. Without WithRand or WithSeed every run is
// randomized differently.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = newUnseededRand()
	}
	return &Renderer{opts: o}
}

// BlockParams returns the block pass configuration of the renderer.
func (r *Renderer) BlockParams() BlockParams {
	return BlockParams{
		Size:       r.opts.blockSize,
		Thresholds: r.opts.thresholds,
		Fallback:   r.opts.fallback,
		Field:      r.opts.field,
		Rand:       r.opts.rand,
		Workers:    r.opts.workers,
	}
}

// Shading returns the depth shading of the renderer.
func (r *Renderer) Shading() Shading { return r.opts.shading }

// Background returns the region clear color.
func (r *Renderer) Background() color.NRGBA { return r.opts.background }

// Region returns the default effect region for an image with bounds b.
func (r *Renderer) Region(b image.Rectangle) image.Rectangle {
	return TopRegion(b, r.opts.regionPercent)
}

// effect is the state of one invocation.
type effect struct {
	surface Surface
	image   *Pixmap
	palette Palette
	region  image.Rectangle
}

// Apply shatters region of src onto dst. src and dst may be the same
// pixmap: every read happens before the region is cleared. The region is
// clipped to both images; an empty region draws nothing. Blocks are
// returned in draw order.
func (r *Renderer) Apply(dst Surface, src *Pixmap, region image.Rectangle) ([]Block, error) {
	if src == nil {
		return nil, ErrNoImage
	}
	if dst == nil {
		return nil, ErrNoSurface
	}
	region = region.Intersect(src.Bounds()).Intersect(dst.Bounds())
	if region.Empty() {
		Logger().Warn("shatter: empty effect region", "bounds", src.Bounds())
		return nil, nil
	}

	e := effect{
		surface: dst,
		image:   src,
		palette: SamplePalette(src, r.opts.thresholds),
		region:  region,
	}
	return r.run(e), nil
}

// ApplyTop shatters the default region (the top RegionHeightPercent) of src
// onto dst.
func (r *Renderer) ApplyTop(dst Surface, src *Pixmap) ([]Block, error) {
	if src == nil {
		return nil, ErrNoImage
	}
	return r.Apply(dst, src, r.Region(src.Bounds()))
}

func (r *Renderer) run(e effect) []Block {
	blocks := BuildBlocks(e.image, e.region, e.palette, r.BlockParams())

	fallbacks := 0
	for _, b := range blocks {
		if b.Fallback {
			fallbacks++
		}
	}
	Logger().Debug("shatter: blocks built",
		"region", e.region,
		"palette", len(e.palette),
		"blocks", len(blocks),
		"fallbacks", fallbacks)

	e.surface.ClearRect(e.region, r.opts.background)
	SortByDepth(blocks)
	DrawBlocks(e.surface, blocks, e.region, r.opts.shading)
	return blocks
}

// Shatter loads the image at path, copies it onto a new surface and applies
// the effect to its top region. If loading fails the returned error wraps
// ErrLoad and no surface is produced.
func Shatter(path string, opts ...Option) (*Pixmap, []Block, error) {
	src, err := LoadImage(path)
	if err != nil {
		return nil, nil, err
	}
	dst := src.Clone()
	blocks, err := New(opts...).ApplyTop(dst, src)
	if err != nil {
		return nil, nil, err
	}
	return dst, blocks, nil
}
