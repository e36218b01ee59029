package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// SamplerBuilder assembles a sampler descriptor. The zero configuration
// clamps to edge with nearest filtering.
//
//	linear, err := gpu.NewSamplerBuilder("linear").Trilinear().Build(ctx)
type SamplerBuilder struct {
	desc hal.SamplerDescriptor
}

// NewSamplerBuilder starts a clamp-to-edge, nearest-filtered sampler.
func NewSamplerBuilder(label string) *SamplerBuilder {
	b := &SamplerBuilder{desc: hal.SamplerDescriptor{Label: label}}
	return b.AddressMode(gputypes.AddressModeClampToEdge).Point()
}

// Trilinear filters linearly within and between mip levels.
func (b *SamplerBuilder) Trilinear() *SamplerBuilder {
	b.desc.MagFilter = gputypes.FilterModeLinear
	b.desc.MinFilter = gputypes.FilterModeLinear
	b.desc.MipmapFilter = gputypes.FilterModeLinear
	return b
}

// Point uses nearest filtering everywhere.
func (b *SamplerBuilder) Point() *SamplerBuilder {
	b.desc.MagFilter = gputypes.FilterModeNearest
	b.desc.MinFilter = gputypes.FilterModeNearest
	b.desc.MipmapFilter = gputypes.FilterModeNearest
	return b
}

// AddressMode sets the U, V and W address modes.
func (b *SamplerBuilder) AddressMode(m gputypes.AddressMode) *SamplerBuilder {
	b.desc.AddressModeU = m
	b.desc.AddressModeV = m
	b.desc.AddressModeW = m
	return b
}

// Descriptor returns the descriptor built so far.
func (b *SamplerBuilder) Descriptor() hal.SamplerDescriptor { return b.desc }

// Build creates the sampler on c's device.
func (b *SamplerBuilder) Build(c *Context) (hal.Sampler, error) {
	if c.destroyed {
		return nil, ErrContextDestroyed
	}
	desc := b.desc
	s, err := c.device.CreateSampler(&desc)
	if err != nil {
		return nil, fmt.Errorf("gpu: create sampler %s: %w", desc.Label, err)
	}
	return s, nil
}
