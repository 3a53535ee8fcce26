package recording

import (
	"image"
	"image/color"

	"github.com/gogpu/shatter"
)

// Recorder is a shatter.Surface that captures every call as a command.
// When a target is set, each call is also forwarded to it.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	bounds   image.Rectangle
	target   shatter.Surface
	commands []Command
}

var _ shatter.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder covering bounds. target may be nil.
// When target is non-nil its bounds take precedence.
func NewRecorder(bounds image.Rectangle, target shatter.Surface) *Recorder {
	if target != nil {
		bounds = target.Bounds()
	}
	return &Recorder{
		bounds:   bounds,
		target:   target,
		commands: make([]Command, 0, 256),
	}
}

// Bounds implements shatter.Surface.
func (r *Recorder) Bounds() image.Rectangle {
	return r.bounds
}

// ClearRect implements shatter.Surface.
func (r *Recorder) ClearRect(rect image.Rectangle, c color.NRGBA) {
	cmd := ClearRectCommand{Rect: rect.Intersect(r.bounds), Color: c}
	r.commands = append(r.commands, cmd)
	if r.target != nil {
		cmd.apply(r.target)
	}
}

// FillRect implements shatter.Surface.
func (r *Recorder) FillRect(m shatter.Matrix, w, h float64, c color.NRGBA, opacity float64, clip image.Rectangle) {
	cmd := FillRectCommand{Transform: m, Width: w, Height: h, Color: c, Opacity: opacity, Clip: clip.Intersect(r.bounds)}
	r.commands = append(r.commands, cmd)
	if r.target != nil {
		cmd.apply(r.target)
	}
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FinishRecording returns an immutable Recording of the commands captured
// so far and resets the Recorder.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{bounds: r.bounds, commands: r.commands}
	r.commands = make([]Command, 0, 256)
	return rec
}

// Recording is an immutable list of commands in the order they were issued.
type Recording struct {
	bounds   image.Rectangle
	commands []Command
}

// Bounds returns the surface bounds the recording was made against.
func (r *Recording) Bounds() image.Rectangle {
	return r.bounds
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays every command onto dst in recording order.
func (r *Recording) Playback(dst shatter.Surface) {
	for _, cmd := range r.commands {
		cmd.apply(dst)
	}
}
