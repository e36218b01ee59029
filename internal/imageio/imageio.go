// Package imageio loads texture images from disk into tightly packed RGBA.
//
// PNG, JPEG and GIF are decoded by the standard library; BMP, TIFF and WebP
// by golang.org/x/image.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	xdraw "golang.org/x/image/draw"
)

// Load errors. Every error returned by Load wraps exactly one of these.
var (
	// ErrRead is returned when the file cannot be opened or read.
	ErrRead = errors.New("imageio: read")

	// ErrDecode is returned when the bytes are not a supported image.
	ErrDecode = errors.New("imageio: decode")
)

// Image is decoded RGBA8 pixel data with no row padding.
type Image struct {
	Width  uint32
	Height uint32
	// Pix holds Width*Height*4 bytes, rows top to bottom.
	Pix []byte
	// Format is the name the decoder registered, e.g. "png".
	Format string
}

// Load reads and decodes the image at path.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r and converts it to RGBA.
func Decode(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}
	rgba := ToRGBA(img)
	return &Image{
		Width:  uint32(b.Dx()), //nolint:gosec // image bounds are non-negative
		Height: uint32(b.Dy()), //nolint:gosec // image bounds are non-negative
		Pix:    rgba.Pix,
		Format: format,
	}, nil
}

// ToRGBA returns img as a tightly packed *image.RGBA anchored at the origin.
// An *image.RGBA that already satisfies this is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// Resize scales img to w x h with Catmull-Rom filtering.
func Resize(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
