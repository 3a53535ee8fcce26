package shatter

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"unicode"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyText is returned by RenderText when nothing printable is left
// after folding.
var ErrEmptyText = errors.New("shatter: no printable text")

const textPadding = 2

// FoldText upper-cases s and folds it to printable ASCII: compatibility
// forms are decomposed, combining marks dropped and anything the bitmap
// face cannot draw removed. Surrounding space is trimmed.
func FoldText(s string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		cases.Upper(language.Und),
		runes.Remove(runes.Predicate(func(r rune) bool { return r < ' ' || r > '~' })),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// RenderText draws word, folded with FoldText, in c on a transparent pixmap
// using a 7x13 bitmap face magnified scale times. The result is meant as
// effect input: each glyph pixel becomes scale x scale source pixels.
func RenderText(word string, scale int, c color.NRGBA) (*Pixmap, error) {
	s := FoldText(word)
	if s == "" {
		return nil, ErrEmptyText
	}
	scale = max(scale, 1)

	face := basicfont.Face7x13
	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil() + 2*textPadding
	h := m.Height.Ceil() + 2*textPadding

	glyphs := NewPixmap(w, h)
	d := &font.Drawer{
		Dst:  glyphs.view(),
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(textPadding, textPadding+m.Ascent.Ceil()),
	}
	d.DrawString(s)

	if scale == 1 {
		return glyphs, nil
	}
	out := NewPixmap(w*scale, h*scale)
	draw.NearestNeighbor.Scale(out.view(), out.Bounds(), glyphs.view(), glyphs.Bounds(), draw.Src, nil)
	Logger().Debug("shatter: text rendered", "text", s, "width", out.Width(), "height", out.Height())
	return out, nil
}
