package render

import (
	"fmt"

	"github.com/gogpu/g3d/gpu"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// GlobalBindings is the group 0 state shared by every shader: the camera
// uniform at binding 0, a trilinear sampler at binding 1 and a point
// sampler at binding 2. Both samplers clamp to edge.
type GlobalBindings struct {
	ctx       *gpu.Context
	layout    hal.BindGroupLayout
	uniform   *gpu.Buffer
	linear    hal.Sampler
	point     hal.Sampler
	bindGroup hal.BindGroup
}

// GlobalLayout builds the group 0 layout.
func GlobalLayout(ctx *gpu.Context) (hal.BindGroupLayout, error) {
	return gpu.NewBindGroupLayoutBuilder("g3d_global_layout").
		Uniform(gputypes.ShaderStageVertex | gputypes.ShaderStageFragment).
		Sampler(gputypes.ShaderStageFragment).
		Sampler(gputypes.ShaderStageFragment).
		Build(ctx)
}

// NewGlobalBindings creates the layout, uniform buffer, samplers and bind
// group, uploading cam's view-projection.
func NewGlobalBindings(ctx *gpu.Context, cam Camera) (*GlobalBindings, error) {
	g := &GlobalBindings{ctx: ctx}
	if err := g.init(cam); err != nil {
		g.Destroy()
		return nil, fmt.Errorf("render: global bindings: %w", err)
	}
	return g, nil
}

func (g *GlobalBindings) init(cam Camera) error {
	var err error
	if g.layout, err = GlobalLayout(g.ctx); err != nil {
		return err
	}
	if g.uniform, err = g.ctx.NewUniformBuffer("g3d_camera_uniform", cam.Uniform()); err != nil {
		return err
	}
	if g.linear, err = gpu.NewSamplerBuilder("g3d_trilinear").Trilinear().Build(g.ctx); err != nil {
		return err
	}
	if g.point, err = gpu.NewSamplerBuilder("g3d_point").Point().Build(g.ctx); err != nil {
		return err
	}
	g.bindGroup, err = gpu.NewBindGroupBuilder("g3d_globals").
		Buffer(g.uniform).
		Sampler(g.linear).
		Sampler(g.point).
		Build(g.ctx, g.layout)
	return err
}

// Update uploads cam's view-projection to the uniform buffer.
func (g *GlobalBindings) Update(cam Camera) error {
	return g.uniform.Write(0, cam.Uniform())
}

// Layout returns the group 0 layout shaders are built against.
func (g *GlobalBindings) Layout() hal.BindGroupLayout { return g.layout }

// BindGroup returns the group 0 bind group.
func (g *GlobalBindings) BindGroup() hal.BindGroup { return g.bindGroup }

// Uniform returns the camera uniform buffer.
func (g *GlobalBindings) Uniform() *gpu.Buffer { return g.uniform }

// Destroy frees everything the bindings own.
func (g *GlobalBindings) Destroy() {
	d := g.ctx.Device()
	if d == nil {
		return
	}
	if g.bindGroup != nil {
		d.DestroyBindGroup(g.bindGroup)
		g.bindGroup = nil
	}
	if g.uniform != nil {
		g.uniform.Destroy()
	}
	if g.linear != nil {
		d.DestroySampler(g.linear)
		g.linear = nil
	}
	if g.point != nil {
		d.DestroySampler(g.point)
		g.point = nil
	}
	if g.layout != nil {
		d.DestroyBindGroupLayout(g.layout)
		g.layout = nil
	}
}
