package gpu

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/g3d/internal/imageio"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// MaxTextureDimension is the largest width or height uploaded as is.
// Larger images are scaled down to fit, keeping their aspect ratio.
const MaxTextureDimension = 8192

// TextureFormat is the format of every texture loaded from an image.
const TextureFormat = gputypes.TextureFormatRGBA8UnormSrgb

// Texture is a sampled 2D texture and its default view.
type Texture struct {
	ctx     *Context
	texture hal.Texture
	view    hal.TextureView
	width   uint32
	height  uint32
	label   string
}

// CreateTexture decodes the image at path and uploads it as an sRGB RGBA8
// texture. Read failures are *AssetLoadError with Kind AssetIO, unsupported
// or corrupt data has Kind AssetDecode.
func (c *Context) CreateTexture(path string) (*Texture, error) {
	img, err := imageio.Load(path)
	if err != nil {
		kind := AssetDecode
		if errors.Is(err, imageio.ErrRead) {
			kind = AssetIO
		}
		return nil, &AssetLoadError{Kind: kind, Path: path, Err: err}
	}
	tex, err := c.CreateTextureFromPixels(path, img.Width, img.Height, img.Pix)
	if err != nil {
		return nil, err
	}
	slogger().Debug("gpu: texture loaded", "path", path, "format", img.Format,
		"width", tex.width, "height", tex.height)
	return tex, nil
}

// CreateTextureFromImage uploads an in-memory image.
func (c *Context) CreateTextureFromImage(label string, img image.Image) (*Texture, error) {
	b := img.Bounds()
	if b.Dx() > MaxTextureDimension || b.Dy() > MaxTextureDimension {
		w, h := fitDimensions(b.Dx(), b.Dy(), MaxTextureDimension)
		slogger().Warn("gpu: texture scaled down", "label", label,
			"from_width", b.Dx(), "from_height", b.Dy(), "width", w, "height", h)
		img = imageio.Resize(img, w, h)
	}
	rgba := imageio.ToRGBA(img)
	return c.createTexture(label, uint32(rgba.Rect.Dx()), uint32(rgba.Rect.Dy()), rgba.Pix) //nolint:gosec // bounded by MaxTextureDimension
}

// CreateTextureFromPixels uploads tightly packed RGBA8 pixels.
func (c *Context) CreateTextureFromPixels(label string, width, height uint32, pix []byte) (*Texture, error) {
	if err := checkPixels(label, width, height, pix); err != nil {
		return nil, err
	}
	if width > MaxTextureDimension || height > MaxTextureDimension {
		return c.CreateTextureFromImage(label, &image.RGBA{
			Pix:    pix,
			Stride: int(width) * 4,
			Rect:   image.Rect(0, 0, int(width), int(height)),
		})
	}
	return c.createTexture(label, width, height, pix)
}

func (c *Context) createTexture(label string, width, height uint32, pix []byte) (*Texture, error) {
	if c.destroyed {
		return nil, ErrContextDestroyed
	}
	if err := checkPixels(label, width, height, pix); err != nil {
		return nil, err
	}

	size := hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1}
	tex, err := c.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        TextureFormat,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create texture %s: %w", label, err)
	}
	view, err := c.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        TextureFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		c.device.DestroyTexture(tex)
		return nil, fmt.Errorf("gpu: create texture view %s: %w", label, err)
	}

	err = c.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		pix,
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: width * 4, RowsPerImage: height},
		&size,
	)
	if err != nil {
		c.device.DestroyTextureView(view)
		c.device.DestroyTexture(tex)
		return nil, fmt.Errorf("gpu: upload texture %s: %w", label, err)
	}
	return &Texture{ctx: c, texture: tex, view: view, width: width, height: height, label: label}, nil
}

func checkPixels(label string, width, height uint32, pix []byte) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("gpu: texture %s: zero size %dx%d: %w", label, width, height, ErrPixelData)
	}
	if want := uint64(width) * uint64(height) * 4; uint64(len(pix)) < want {
		return fmt.Errorf("gpu: texture %s: have %d bytes, want %d: %w", label, len(pix), want, ErrPixelData)
	}
	return nil
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height uint32) { return t.width, t.height }

// View returns the default 2D view.
func (t *Texture) View() hal.TextureView { return t.view }

// Raw returns the HAL texture.
func (t *Texture) Raw() hal.Texture { return t.texture }

// Destroy frees the view and the texture. Safe to call twice.
func (t *Texture) Destroy() {
	if t.texture == nil {
		return
	}
	if d := t.ctx.device; d != nil {
		d.DestroyTextureView(t.view)
		d.DestroyTexture(t.texture)
	}
	t.view = nil
	t.texture = nil
}

// fitDimensions scales w x h down so that neither side exceeds limit.
func fitDimensions(w, h, limit int) (int, int) {
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}
