package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// BindGroupLayoutBuilder collects layout entries. Each entry gets the next
// binding index, starting at zero.
//
//	layout, err := gpu.NewBindGroupLayoutBuilder("material").
//	    Texture(gputypes.ShaderStageFragment).
//	    Sampler(gputypes.ShaderStageFragment).
//	    Build(ctx)
type BindGroupLayoutBuilder struct {
	label   string
	entries []gputypes.BindGroupLayoutEntry
}

// NewBindGroupLayoutBuilder starts an empty layout.
func NewBindGroupLayoutBuilder(label string) *BindGroupLayoutBuilder {
	return &BindGroupLayoutBuilder{label: label}
}

func (b *BindGroupLayoutBuilder) next() uint32 { return uint32(len(b.entries)) } //nolint:gosec // a handful of entries

// Uniform adds a uniform buffer binding.
func (b *BindGroupLayoutBuilder) Uniform(visibility gputypes.ShaderStage) *BindGroupLayoutBuilder {
	b.entries = append(b.entries, gputypes.BindGroupLayoutEntry{
		Binding:    b.next(),
		Visibility: visibility,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
	})
	return b
}

// Texture adds a filterable float texture_2d binding.
func (b *BindGroupLayoutBuilder) Texture(visibility gputypes.ShaderStage) *BindGroupLayoutBuilder {
	b.entries = append(b.entries, gputypes.BindGroupLayoutEntry{
		Binding:    b.next(),
		Visibility: visibility,
		Texture: &gputypes.TextureBindingLayout{
			SampleType:    gputypes.TextureSampleTypeFloat,
			ViewDimension: gputypes.TextureViewDimension2D,
		},
	})
	return b
}

// Sampler adds a filtering sampler binding.
func (b *BindGroupLayoutBuilder) Sampler(visibility gputypes.ShaderStage) *BindGroupLayoutBuilder {
	b.entries = append(b.entries, gputypes.BindGroupLayoutEntry{
		Binding:    b.next(),
		Visibility: visibility,
		Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
	})
	return b
}

// Entries returns the entries added so far.
func (b *BindGroupLayoutBuilder) Entries() []gputypes.BindGroupLayoutEntry { return b.entries }

// Build creates the layout on c's device.
func (b *BindGroupLayoutBuilder) Build(c *Context) (hal.BindGroupLayout, error) {
	if c.destroyed {
		return nil, ErrContextDestroyed
	}
	layout, err := c.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   b.label,
		Entries: b.entries,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create bind group layout %s: %w", b.label, err)
	}
	return layout, nil
}

// BindGroupBuilder collects bind group entries in binding order, matching a
// layout built with BindGroupLayoutBuilder.
type BindGroupBuilder struct {
	label   string
	entries []gputypes.BindGroupEntry
}

// NewBindGroupBuilder starts an empty bind group.
func NewBindGroupBuilder(label string) *BindGroupBuilder {
	return &BindGroupBuilder{label: label}
}

func (b *BindGroupBuilder) next() uint32 { return uint32(len(b.entries)) } //nolint:gosec // a handful of entries

// Buffer binds the whole of buf.
func (b *BindGroupBuilder) Buffer(buf *Buffer) *BindGroupBuilder {
	b.entries = append(b.entries, gputypes.BindGroupEntry{Binding: b.next(), Resource: buf.Binding()})
	return b
}

// TextureView binds a texture view.
func (b *BindGroupBuilder) TextureView(view hal.TextureView) *BindGroupBuilder {
	b.entries = append(b.entries, gputypes.BindGroupEntry{
		Binding:  b.next(),
		Resource: gputypes.TextureViewBinding{TextureView: view.NativeHandle()},
	})
	return b
}

// Sampler binds a sampler.
func (b *BindGroupBuilder) Sampler(s hal.Sampler) *BindGroupBuilder {
	b.entries = append(b.entries, gputypes.BindGroupEntry{
		Binding:  b.next(),
		Resource: gputypes.SamplerBinding{Sampler: s.NativeHandle()},
	})
	return b
}

// Entries returns the entries added so far.
func (b *BindGroupBuilder) Entries() []gputypes.BindGroupEntry { return b.entries }

// Build creates the bind group against layout.
func (b *BindGroupBuilder) Build(c *Context, layout hal.BindGroupLayout) (hal.BindGroup, error) {
	return c.CreateBindGroup(b.label, layout, b.entries)
}

// CreateBindGroup creates a bind group from explicit entries.
func (c *Context) CreateBindGroup(label string, layout hal.BindGroupLayout, entries []gputypes.BindGroupEntry) (hal.BindGroup, error) {
	if c.destroyed {
		return nil, ErrContextDestroyed
	}
	bg, err := c.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   label,
		Layout:  layout,
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create bind group %s: %w", label, err)
	}
	return bg, nil
}

// MaterialLayout builds the layout every material bind group follows:
// a texture (binding 0) and a sampler (binding 1), both fragment-visible.
func MaterialLayout(c *Context) (hal.BindGroupLayout, error) {
	return NewBindGroupLayoutBuilder("g3d_material_layout").
		Texture(gputypes.ShaderStageFragment).
		Sampler(gputypes.ShaderStageFragment).
		Build(c)
}
