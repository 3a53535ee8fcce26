// Package cli implements the shatter command-line interface.
//
// # Commands
//
//   - render: shatter the top of an image into a PNG or SVG
//   - animate: write the effect as an animated GIF
//   - text: render a word as pixel glyphs and shatter it
//   - palette: print the fallback palette of an image
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The same
// logger backs the library's slog output, so -v also shows the effect's
// block statistics.
package cli
