package recording

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// WriteSVG writes the recording as a standalone SVG document. When base is
// non-nil it is embedded as a PNG underneath the recorded commands, so the
// result shows the effect over the untouched image.
func (r *Recording) WriteSVG(w io.Writer, base image.Image) error {
	b := r.bounds
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%d %d %d %d" width="%d" height="%d">`+"\n",
		b.Min.X, b.Min.Y, b.Dx(), b.Dy(), b.Dx(), b.Dy())

	clips := make(map[image.Rectangle]string)
	var defs, body bytes.Buffer

	if base != nil {
		// Transparent clears erase the base image instead of painting.
		var erased []image.Rectangle
		for _, cmd := range r.commands {
			if c, ok := cmd.(ClearRectCommand); ok && c.Color.A == 0 && !c.Rect.Empty() {
				erased = append(erased, c.Rect)
			}
		}
		mask := ""
		if len(erased) > 0 {
			mask = "erase"
			fmt.Fprintf(&defs, `    <mask id="%s"><rect x="%d" y="%d" width="%d" height="%d" fill="#ffffff"/>`,
				mask, b.Min.X, b.Min.Y, b.Dx(), b.Dy())
			for _, e := range erased {
				fmt.Fprintf(&defs, `<rect x="%d" y="%d" width="%d" height="%d" fill="#000000"/>`,
					e.Min.X, e.Min.Y, e.Dx(), e.Dy())
			}
			defs.WriteString("</mask>\n")
		}
		if err := renderBase(&body, base, mask); err != nil {
			return fmt.Errorf("recording: embed base image: %w", err)
		}
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearRectCommand:
			renderClear(&body, c)
		case FillRectCommand:
			id, ok := clips[c.Clip]
			if !ok {
				id = fmt.Sprintf("clip%d", len(clips))
				clips[c.Clip] = id
				fmt.Fprintf(&defs, `    <clipPath id="%s"><rect x="%d" y="%d" width="%d" height="%d"/></clipPath>`+"\n",
					id, c.Clip.Min.X, c.Clip.Min.Y, c.Clip.Dx(), c.Clip.Dy())
			}
			renderFill(&body, c, id)
		}
	}

	if defs.Len() > 0 {
		buf.WriteString("  <defs>\n")
		buf.Write(defs.Bytes())
		buf.WriteString("  </defs>\n")
	}
	buf.Write(body.Bytes())
	buf.WriteString("</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func renderBase(buf *bytes.Buffer, img image.Image, mask string) error {
	var enc bytes.Buffer
	if err := png.Encode(&enc, img); err != nil {
		return err
	}
	ib := img.Bounds()
	attr := ""
	if mask != "" {
		attr = fmt.Sprintf(` mask="url(#%s)"`, mask)
	}
	fmt.Fprintf(buf, `  <image x="%d" y="%d" width="%d" height="%d"%s href="data:image/png;base64,%s"/>`+"\n",
		ib.Min.X, ib.Min.Y, ib.Dx(), ib.Dy(), attr, base64.StdEncoding.EncodeToString(enc.Bytes()))
	return nil
}

func renderClear(buf *bytes.Buffer, c ClearRectCommand) {
	if c.Rect.Empty() || c.Color.A == 0 {
		return
	}
	fmt.Fprintf(buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"%s/>`+"\n",
		c.Rect.Min.X, c.Rect.Min.Y, c.Rect.Dx(), c.Rect.Dy(), hexColor(c.Color), alphaAttr("fill-opacity", c.Color))
}

func renderFill(buf *bytes.Buffer, c FillRectCommand, clipID string) {
	if c.Width <= 0 || c.Height <= 0 || !(c.Opacity > 0) {
		return
	}
	m := c.Transform
	// SVG's matrix(a b c d e f) is column-major.
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" transform="matrix(%.5f %.5f %.5f %.5f %.2f %.2f)" fill="%s" fill-opacity="%.3f" clip-path="url(#%s)"/>`+"\n",
		-c.Width/2, -c.Height/2, c.Width, c.Height,
		m.A, m.D, m.B, m.E, m.C, m.F,
		hexColor(c.Color), c.Opacity*float64(c.Color.A)/255, clipID)
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func alphaAttr(name string, c color.NRGBA) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(` %s="%.3f"`, name, float64(c.A)/255)
}
