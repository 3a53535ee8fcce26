// Package shatter breaks an image region into square blocks and flings
// them apart.
//
// # Overview
//
// The effect tiles a region (by default the top half of an image) with
// blocks, averages each block's color, and displaces every block along a
// field made of a radial expansion away from a focal point, an upward lift,
// random jitter and a tangential swirl. Displacement is scaled by each
// block's intensity, which is 1 at the top of the region and falls to 0
// at its bottom. The region is then cleared and the blocks are drawn back
// farthest first, rotated and scaled, with far blocks faded and darkened.
//
// Blocks that are mostly transparent or near-black take a color from the
// image's fallback palette instead, so dark or cut-out images still
// shatter into visible pieces.
//
// # Quick Start
//
//	import "github.com/gogpu/shatter"
//
//	out, blocks, err := shatter.Shatter("photo.png", shatter.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out.SavePNG("shattered.png")
//
// # Surfaces
//
// Apply draws onto any Surface. *Pixmap is the raster surface; the
// recording package provides a Surface that captures the draw commands for
// replay or SVG export.
//
// # Reproducibility
//
// All randomness comes from a single Rand consumed in grid order, five
// draws per block. A seeded Renderer produces identical blocks regardless
// of the worker count set with WithWorkers.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package shatter
