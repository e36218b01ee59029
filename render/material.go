package render

import (
	"fmt"

	"github.com/gogpu/g3d/gpu"
	"github.com/gogpu/wgpu/hal"
)

// Material pairs a Shader with a bind group built against the shader's
// material layout. The Shader is shared; the bind group is owned.
type Material struct {
	Shader    *gpu.Shader
	BindGroup hal.BindGroup

	ctx *gpu.Context
}

// NewMaterial binds texture and sampler against shader's material layout.
func NewMaterial(ctx *gpu.Context, label string, shader *gpu.Shader, texture *gpu.Texture, sampler hal.Sampler) (*Material, error) {
	bg, err := gpu.NewBindGroupBuilder(label).
		TextureView(texture.View()).
		Sampler(sampler).
		Build(ctx, shader.MaterialLayout())
	if err != nil {
		return nil, fmt.Errorf("render: material %s: %w", label, err)
	}
	return &Material{Shader: shader, BindGroup: bg, ctx: ctx}, nil
}

// Destroy frees the bind group. The shader is left alone.
func (m *Material) Destroy() {
	if m.BindGroup == nil || m.ctx == nil || m.ctx.Device() == nil {
		return
	}
	m.ctx.Device().DestroyBindGroup(m.BindGroup)
	m.BindGroup = nil
}
