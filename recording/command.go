package recording

import (
	"image"
	"image/color"

	"github.com/gogpu/shatter"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClearRect CommandType = iota // Overwrite a rectangle with a color
	CmdFillRect                     // Fill a transformed rectangle
)

var commandTypeNames = [...]string{
	CmdClearRect: "ClearRect",
	CmdFillRect:  "FillRect",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	Type() CommandType
	apply(dst shatter.Surface)
}

// ClearRectCommand overwrites Rect with Color.
type ClearRectCommand struct {
	Rect  image.Rectangle
	Color color.NRGBA
}

// Type implements Command.
func (ClearRectCommand) Type() CommandType { return CmdClearRect }

func (c ClearRectCommand) apply(dst shatter.Surface) {
	dst.ClearRect(c.Rect, c.Color)
}

// FillRectCommand fills a Width×Height rectangle centred on the origin of
// Transform, composited with Opacity and clipped to Clip.
type FillRectCommand struct {
	Transform     shatter.Matrix
	Width, Height float64
	Color         color.NRGBA
	Opacity       float64
	Clip          image.Rectangle
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

func (c FillRectCommand) apply(dst shatter.Surface) {
	dst.FillRect(c.Transform, c.Width, c.Height, c.Color, c.Opacity, c.Clip)
}
