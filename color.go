package shatter

import (
	"fmt"
	"image/color"
	"math"
)

// ColorSample is an opaque RGB triple taken from the source image.
type ColorSample struct {
	R, G, B uint8
}

// NRGBA returns the sample as a fully opaque color.
func (c ColorSample) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// DefaultFallback is the warm yellow used when an image has no visible
// colors to borrow from.
var DefaultFallback = ColorSample{R: 255, G: 220, B: 100}

// Common colors
var (
	Transparent = color.NRGBA{}
	Black       = color.NRGBA{A: 255}
	White       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Thresholds decide which pixels count as visible color.
type Thresholds struct {
	// Alpha is the visibility threshold. Sampled pixels need alpha > Alpha;
	// averaged blocks need mean alpha >= Alpha.
	Alpha uint8
	// Dark marks a color near-black when every channel is below it.
	Dark uint8
}

// DefaultThresholds returns the 50/50 visibility and darkness thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Alpha: 50, Dark: 50}
}

// NearBlack reports whether all three channels are below the dark threshold.
func (t Thresholds) NearBlack(r, g, b uint8) bool {
	return r < t.Dark && g < t.Dark && b < t.Dark
}

// Darken scales the RGB channels of c by f, flooring each channel.
// Alpha is left unchanged.
func Darken(c color.NRGBA, f float64) color.NRGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.NRGBA{
		R: uint8(math.Floor(float64(c.R) * f)),
		G: uint8(math.Floor(float64(c.G) * f)),
		B: uint8(math.Floor(float64(c.B) * f)),
		A: c.A,
	}
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without a
// leading '#'. Missing alpha means opaque.
func ParseHex(hex string) (color.NRGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(s) {
	case 3:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	}
	if !ok {
		return color.NRGBA{}, fmt.Errorf("shatter: invalid hex color %q", hex)
	}

	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
