// Package recording captures the draw commands an effect issues against a
// shatter.Surface so they can be inspected, replayed onto another surface,
// or exported as SVG.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(src.Bounds(), nil)
//	blocks, err := shatter.New(shatter.WithSeed(1)).ApplyTop(rec, src)
//	r := rec.FinishRecording()
//
//	// Raster playback
//	dst := src.Clone()
//	r.Playback(dst)
//
//	// Vector export, the untouched image embedded underneath
//	err = r.WriteSVG(w, src)
//
// A Recorder may also forward every command to a target surface while
// recording, which is how the CLI draws and records in one pass.
package recording
