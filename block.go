package shatter

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/gogpu/shatter/internal/parallel"
)

// Rand is the source of uniform draws in [0, 1) used for jitter, rotation,
// size variation and fallback color picks. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a PCG-backed source seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newUnseededRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Block is one tile of the effect region. Blocks are plain records: they
// are created by BuildBlocks and never modified afterwards.
type Block struct {
	OriginalX, OriginalY int     // top-left in the source image
	X, Y                 float64 // displaced top-left
	Width, Height        int     // clipped to the region

	// Color is the averaged block color. When Fallback is set it was
	// replaced by a palette sample and its alpha forced to 255.
	Color    color.NRGBA
	Fallback bool

	Rotation      float64 // radians
	SizeVariation float64
	Intensity     float64 // 1 at the top of the region, towards 0 at the bottom
	Displacement  float64 // length of the displacement offset
	Depth         float64 // Intensity * Displacement
}

// Origin returns the undisplaced centre of the block.
func (b Block) Origin() Point {
	return Pt(float64(b.OriginalX)+float64(b.Width)/2, float64(b.OriginalY)+float64(b.Height)/2)
}

// Center returns the displaced centre of the block.
func (b Block) Center() Point {
	return Pt(b.X+float64(b.Width)/2, b.Y+float64(b.Height)/2)
}

// BlockParams configures the block pass.
type BlockParams struct {
	Size       int
	Thresholds Thresholds
	Fallback   ColorSample
	Field      Field
	Rand       Rand // nil means an unseeded source
	Workers    int  // >1 averages blocks on a worker pool
}

type cell struct {
	rect  image.Rectangle
	noise noise
}

// BuildBlocks tiles region (clipped to src) with p.Size blocks and computes
// each block's color and displacement. Random draws are taken in grid
// order before any averaging, so a seeded Rand gives the same blocks for
// any worker count. Blocks come back in grid order.
func BuildBlocks(src *Pixmap, region image.Rectangle, pal Palette, p BlockParams) []Block {
	region = region.Intersect(src.Bounds())
	if region.Empty() || p.Size <= 0 {
		return nil
	}
	rnd := p.Rand
	if rnd == nil {
		rnd = newUnseededRand()
	}

	var cells []cell
	for y := region.Min.Y; y < region.Max.Y; y += p.Size {
		for x := region.Min.X; x < region.Max.X; x += p.Size {
			cells = append(cells, cell{
				rect:  image.Rect(x, y, min(x+p.Size, region.Max.X), min(y+p.Size, region.Max.Y)),
				noise: drawNoise(rnd),
			})
		}
	}

	focal := Pt(float64(region.Min.X)+float64(region.Dx())/2, float64(region.Min.Y))
	blocks := make([]Block, len(cells))
	keep := make([]bool, len(cells))
	build := func(i int) {
		blocks[i], keep[i] = buildBlock(src, cells[i], region, focal, pal, p)
	}

	if p.Workers > 1 && len(cells) > 1 {
		pool := parallel.NewWorkerPool(p.Workers)
		defer pool.Close()
		Logger().Debug("shatter: block pass", "workers", pool.Workers(), "cells", len(cells))
		pool.Range(len(cells), build)
	} else {
		for i := range cells {
			build(i)
		}
	}

	out := blocks[:0]
	for i, b := range blocks {
		if keep[i] {
			out = append(out, b)
		}
	}
	return out
}

func buildBlock(src *Pixmap, c cell, region image.Rectangle, focal Point, pal Palette, p BlockParams) (Block, bool) {
	rgb, alpha, n := src.Average(c.rect)
	if n == 0 {
		return Block{}, false
	}

	intensity := float64(region.Max.Y-c.rect.Min.Y) / float64(region.Dy())
	center := Pt(float64(c.rect.Min.X)+float64(c.rect.Dx())/2, float64(c.rect.Min.Y)+float64(c.rect.Dy())/2)
	angle, distance := center.Polar(focal)

	turbulence := p.Field.Turbulence(angle, distance, intensity)
	offset := p.Field.Offset(angle, turbulence, intensity, c.noise)

	col := color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: uint8(math.Round(alpha))}
	fallback := alpha < float64(p.Thresholds.Alpha) || p.Thresholds.NearBlack(rgb.R, rgb.G, rgb.B)
	if fallback {
		col = pal.Pick(c.noise.pick, p.Fallback).NRGBA()
	}

	displacement := offset.Length()
	return Block{
		OriginalX:     c.rect.Min.X,
		OriginalY:     c.rect.Min.Y,
		X:             float64(c.rect.Min.X) + offset.X,
		Y:             float64(c.rect.Min.Y) + offset.Y,
		Width:         c.rect.Dx(),
		Height:        c.rect.Dy(),
		Color:         col,
		Fallback:      fallback,
		Rotation:      p.Field.Rotation(turbulence, intensity, c.noise),
		SizeVariation: p.Field.SizeVariation(c.noise),
		Intensity:     intensity,
		Displacement:  displacement,
		Depth:         intensity * displacement,
	}, true
}
