package gpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Fallbacks used when the adapter reports no surface capabilities.
const (
	fallbackSurfaceFormat = gputypes.TextureFormatBGRA8UnormSrgb
	fallbackPresentMode   = hal.PresentModeFifo
)

// SurfaceConfig is the presentation state of a Context's surface.
type SurfaceConfig struct {
	Format      gputypes.TextureFormat
	Width       uint32
	Height      uint32
	PresentMode hal.PresentMode
	AlphaMode   hal.CompositeAlphaMode
}

// Aspect returns width/height, or 0 when the surface has zero height.
func (c SurfaceConfig) Aspect() float32 {
	if c.Height == 0 {
		return 0
	}
	return float32(c.Width) / float32(c.Height)
}

// IsSRGB reports whether f stores color with the sRGB transfer function.
func IsSRGB(f gputypes.TextureFormat) bool {
	switch f {
	case gputypes.TextureFormatRGBA8UnormSrgb, gputypes.TextureFormatBGRA8UnormSrgb:
		return true
	default:
		return false
	}
}

// chooseFormat picks the first sRGB format, else the first format.
func chooseFormat(formats []gputypes.TextureFormat) gputypes.TextureFormat {
	for _, f := range formats {
		if IsSRGB(f) {
			return f
		}
	}
	if len(formats) > 0 {
		return formats[0]
	}
	return fallbackSurfaceFormat
}

// choosePresentMode returns preferred when supported. Fifo is always
// available, so it is the fallback.
func choosePresentMode(modes []hal.PresentMode, preferred hal.PresentMode) hal.PresentMode {
	for _, m := range modes {
		if m == preferred {
			return m
		}
	}
	return fallbackPresentMode
}

// chooseSurfaceConfig derives the initial configuration from the adapter's
// surface capabilities. caps may be nil.
func chooseSurfaceConfig(caps *hal.SurfaceCapabilities, preferred hal.PresentMode) SurfaceConfig {
	cfg := SurfaceConfig{
		Format:      fallbackSurfaceFormat,
		PresentMode: fallbackPresentMode,
		AlphaMode:   hal.CompositeAlphaModeOpaque,
	}
	if caps == nil {
		return cfg
	}
	cfg.Format = chooseFormat(caps.Formats)
	cfg.PresentMode = choosePresentMode(caps.PresentModes, preferred)
	if len(caps.AlphaModes) > 0 {
		cfg.AlphaMode = caps.AlphaModes[0]
	}
	return cfg
}

// selectAdapter prefers a discrete GPU, then an integrated one, then
// whatever comes first.
func selectAdapter(adapters []hal.ExposedAdapter) *hal.ExposedAdapter {
	if len(adapters) == 0 {
		return nil
	}
	for _, want := range []gputypes.DeviceType{gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU} {
		for i := range adapters {
			if adapters[i].Info.DeviceType == want {
				return &adapters[i]
			}
		}
	}
	return &adapters[0]
}
