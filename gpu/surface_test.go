package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

func TestChooseFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []gputypes.TextureFormat
		want    gputypes.TextureFormat
	}{
		{"prefers srgb", []gputypes.TextureFormat{gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb}, gputypes.TextureFormatRGBA8UnormSrgb},
		{"first srgb wins", []gputypes.TextureFormat{gputypes.TextureFormatBGRA8UnormSrgb, gputypes.TextureFormatRGBA8UnormSrgb}, gputypes.TextureFormatBGRA8UnormSrgb},
		{"no srgb takes first", []gputypes.TextureFormat{gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm}, gputypes.TextureFormatRGBA8Unorm},
		{"empty", nil, fallbackSurfaceFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chooseFormat(tt.formats); got != tt.want {
				t.Errorf("chooseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChoosePresentMode(t *testing.T) {
	tests := []struct {
		name      string
		modes     []hal.PresentMode
		preferred hal.PresentMode
		want      hal.PresentMode
	}{
		{"mailbox supported", []hal.PresentMode{hal.PresentModeFifo, hal.PresentModeMailbox}, hal.PresentModeMailbox, hal.PresentModeMailbox},
		{"mailbox missing", []hal.PresentMode{hal.PresentModeFifo, hal.PresentModeImmediate}, hal.PresentModeMailbox, hal.PresentModeFifo},
		{"immediate preferred", []hal.PresentMode{hal.PresentModeImmediate, hal.PresentModeFifo}, hal.PresentModeImmediate, hal.PresentModeImmediate},
		{"nothing reported", nil, hal.PresentModeMailbox, hal.PresentModeFifo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := choosePresentMode(tt.modes, tt.preferred); got != tt.want {
				t.Errorf("choosePresentMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChooseSurfaceConfigNilCaps(t *testing.T) {
	cfg := chooseSurfaceConfig(nil, hal.PresentModeMailbox)
	if cfg.Format != fallbackSurfaceFormat || cfg.PresentMode != hal.PresentModeFifo {
		t.Errorf("chooseSurfaceConfig(nil) = %+v, want fallback format and Fifo", cfg)
	}
}

func TestSelectAdapter(t *testing.T) {
	mk := func(types ...gputypes.DeviceType) []hal.ExposedAdapter {
		out := make([]hal.ExposedAdapter, len(types))
		for i, dt := range types {
			out[i].Info.DeviceType = dt
		}
		return out
	}

	if selectAdapter(nil) != nil {
		t.Error("selectAdapter(nil) != nil")
	}
	got := selectAdapter(mk(gputypes.DeviceTypeCPU, gputypes.DeviceTypeIntegratedGPU, gputypes.DeviceTypeDiscreteGPU))
	if got.Info.DeviceType != gputypes.DeviceTypeDiscreteGPU {
		t.Errorf("selected %v, want discrete", got.Info.DeviceType)
	}
	got = selectAdapter(mk(gputypes.DeviceTypeCPU, gputypes.DeviceTypeIntegratedGPU))
	if got.Info.DeviceType != gputypes.DeviceTypeIntegratedGPU {
		t.Errorf("selected %v, want integrated", got.Info.DeviceType)
	}
	adapters := mk(gputypes.DeviceTypeCPU)
	if got := selectAdapter(adapters); got != &adapters[0] {
		t.Error("expected fallback to first adapter")
	}
}
