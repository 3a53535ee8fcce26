package shatter

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrLoad is wrapped by every error returned while loading a source
	// image. When it is returned the effect has not run.
	ErrLoad = errors.New("shatter: image load failed")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("shatter: empty image data")
)

// LoadImage loads an image from path, detecting the format from content.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func LoadImage(path string) (*Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open file: %w", ErrLoad, err)
	}
	defer func() { _ = f.Close() }()

	return DecodeImage(f)
}

// LoadImageFromBytes decodes an in-memory image.
func LoadImageFromBytes(data []byte) (*Pixmap, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrLoad, ErrEmptyData)
	}
	return DecodeImage(bytes.NewReader(data))
}

// DecodeImage decodes an image from r, auto-detecting the format.
func DecodeImage(r io.Reader) (*Pixmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrLoad, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s image has no pixels", ErrLoad, format)
	}
	Logger().Debug("shatter: image decoded", "format", format, "bounds", img.Bounds())
	return FromImage(img), nil
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("shatter: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("shatter: create file: %w", err)
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
