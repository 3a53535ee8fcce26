package shatter

import "image/color"

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default look, random every run
//	r := shatter.New()
//
//	// Reproducible, coarser blocks over the top third
//	r := shatter.New(shatter.WithSeed(42), shatter.WithBlockSize(12),
//	    shatter.WithRegionHeightPercent(33))
type Option func(*options)

type options struct {
	blockSize     int
	regionPercent float64
	thresholds    Thresholds
	fallback      ColorSample
	background    color.NRGBA
	field         Field
	shading       Shading
	rand          Rand
	workers       int
}

func defaultOptions() options {
	return options{
		blockSize:     8,
		regionPercent: 50,
		thresholds:    DefaultThresholds(),
		fallback:      DefaultFallback,
		background:    Transparent,
		field:         DefaultField(),
		shading:       DefaultShading(),
		rand:          nil, // created in New
		workers:       1,
	}
}

// WithBlockSize sets the block edge length in pixels. Values below 1 keep
// the default of 8.
func WithBlockSize(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.blockSize = n
		}
	}
}

// WithRegionHeightPercent sets the share of the image height, from the top,
// that the effect covers. Values outside (0, 100] keep the default of 50.
func WithRegionHeightPercent(p float64) Option {
	return func(o *options) {
		if p > 0 && p <= 100 {
			o.regionPercent = p
		}
	}
}

// WithThresholds sets the visibility and near-black thresholds.
func WithThresholds(th Thresholds) Option {
	return func(o *options) {
		o.thresholds = th
	}
}

// WithDefaultColor sets the color used when the fallback palette is empty.
func WithDefaultColor(c ColorSample) Option {
	return func(o *options) {
		o.fallback = c
	}
}

// WithBackground sets the color the region is cleared to before blocks are
// drawn. An opaque background leaves no transparent gaps between blocks.
func WithBackground(c color.NRGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithField replaces the displacement field constants.
func WithField(f Field) Option {
	return func(o *options) {
		o.field = f
	}
}

// WithShading replaces the depth shading constants.
func WithShading(s Shading) Option {
	return func(o *options) {
		o.shading = s
	}
}

// WithRand injects the random source. A nil source keeps the default.
func WithRand(r Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithSeed is shorthand for WithRand(NewRand(seed)).
func WithSeed(seed uint64) Option {
	return WithRand(NewRand(seed))
}

// WithWorkers averages blocks on n goroutines. n <= 1 keeps the block pass
// on the calling goroutine. Sorting and drawing are always sequential.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}
