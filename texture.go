package tme

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Texture is an image uploaded to the graphics backend. It is owned by the
// caller and released with Engine.DestroyTexture.
type Texture struct {
	handle uint32
	width  int
	height int
	path   string
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Path returns the file the texture was loaded from.
func (t *Texture) Path() string { return t.path }

// Handle returns the backend texture handle.
func (t *Texture) Handle() uint32 { return t.handle }

// LoadPNG reads and decodes a PNG file into non-premultiplied RGBA.
func LoadPNG(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open texture")
	}
	defer f.Close()

	img, err := DecodePNG(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode texture %s", path)
	}
	return img, nil
}

// DecodePNG decodes a PNG stream into non-premultiplied RGBA.
func DecodePNG(r io.Reader) (*image.NRGBA, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return toNRGBA(src), nil
}

// toNRGBA converts src to a zero-origin NRGBA image, reusing it when it
// already is one.
func toNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
