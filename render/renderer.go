// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/g3d/gpu"
	"github.com/gogpu/wgpu/hal"
)

// State is the lifecycle state of a Renderer.
type State int

const (
	// StateUninitialized is the zero value: no device yet.
	StateUninitialized State = iota
	// StateConfigured means the surface is ready and Render draws.
	StateConfigured
	// StateRendering is held for the duration of one Render call.
	StateRendering
	// StateUnconfigured follows a zero-area resize. Render is a no-op.
	StateUnconfigured
	// StateClosed follows Close.
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConfigured:
		return "configured"
	case StateRendering:
		return "rendering"
	case StateUnconfigured:
		return "unconfigured"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Renderer draws queued RenderObjects to a window surface once per Render
// call. It owns the GPU context, the camera, the global bindings and the
// resource registries.
//
// A Renderer is driven from one goroutine:
//
//	r, err := render.New(window)
//	...
//	for running {
//	    r.PushObject(obj)
//	    if err := r.Render(); err != nil {
//	        switch kind := render.ClassifySurfaceError(err); {
//	        case kind.Recoverable():
//	            r.Reconfigure()
//	        case kind.Fatal():
//	            return err
//	        }
//	    }
//	}
type Renderer struct {
	ctx       *gpu.Context
	camera    Camera
	globals   *GlobalBindings
	passes    []Pass
	queue     []*RenderObject
	resources *Resources
	state     State
}

// New creates the GPU context for window and the default camera, global
// bindings and main pass.
func New(window gpu.Window, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, err := gpu.New(window, o.gpuOpts...)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		ctx:       ctx,
		passes:    []Pass{NewMainPass()},
		resources: NewResources(),
	}
	if o.camera != nil {
		r.camera = *o.camera
	} else {
		r.camera = DefaultCamera(ctx.Config().Aspect())
	}

	r.globals, err = NewGlobalBindings(ctx, r.camera)
	if err != nil {
		ctx.Destroy()
		return nil, err
	}
	r.syncState()
	slogger().Info("render: renderer ready", "state", r.state,
		"width", ctx.Config().Width, "height", ctx.Config().Height)
	return r, nil
}

func (r *Renderer) syncState() {
	if r.ctx.Configured() {
		r.state = StateConfigured
	} else {
		r.state = StateUnconfigured
	}
}

// Resize reconfigures the surface and updates the camera aspect and the
// global uniform. A zero width or height leaves the renderer unconfigured
// until the next non-zero resize.
func (r *Renderer) Resize(width, height uint32) error {
	if r.state == StateClosed {
		return ErrRendererClosed
	}
	err := r.ctx.Resize(width, height)
	r.syncState()
	if err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}
	r.camera.Aspect = float32(width) / float32(height)
	return r.UpdateSceneData()
}

// Reconfigure reapplies the current surface configuration. Call it after
// Render returns an error ClassifySurfaceError reports as Recoverable.
func (r *Renderer) Reconfigure() error {
	if r.state == StateClosed {
		return ErrRendererClosed
	}
	err := r.ctx.Reconfigure()
	r.syncState()
	return err
}

// UpdateSceneData uploads the camera's view-projection to the global
// uniform buffer.
func (r *Renderer) UpdateSceneData() error {
	if r.state == StateClosed {
		return ErrRendererClosed
	}
	return r.globals.Update(r.camera)
}

// Camera returns the current camera.
func (r *Renderer) Camera() Camera { return r.camera }

// SetCamera replaces the camera. The uniform is uploaded on the next
// UpdateSceneData or Render.
func (r *Renderer) SetCamera(c Camera) { r.camera = c }

// PushObject queues obj for the next Render. Objects are drawn in push
// order.
func (r *Renderer) PushObject(obj *RenderObject) error {
	if r.state == StateClosed {
		return ErrRendererClosed
	}
	if err := obj.validate(); err != nil {
		return err
	}
	r.queue = append(r.queue, obj)
	return nil
}

// Queued returns the number of objects waiting for the next Render.
func (r *Renderer) Queued() int { return len(r.queue) }

// Render uploads the camera, records every pass into the next surface
// texture, submits and presents. The object queue is emptied whether or not
// the frame succeeds. While unconfigured Render returns nil without
// touching the surface.
//
// Surface errors are returned unwrapped; see ClassifySurfaceError.
func (r *Renderer) Render() error {
	defer r.clearQueue()

	switch r.state {
	case StateClosed:
		return ErrRendererClosed
	case StateUnconfigured:
		return nil
	}

	r.state = StateRendering
	defer r.syncState()

	if err := r.globals.Update(r.camera); err != nil {
		return err
	}

	frame, err := r.ctx.AcquireFrame()
	if err != nil {
		if errors.Is(err, gpu.ErrSurfaceNotConfigured) {
			return nil
		}
		return err
	}

	encoder, err := r.ctx.BeginEncoding("g3d_frame")
	if err != nil {
		frame.Discard()
		return err
	}
	r.record(encoder, frame.View())

	if err := r.ctx.Submit(encoder); err != nil {
		frame.Discard()
		return err
	}
	if frame.Suboptimal {
		slogger().Debug("render: suboptimal surface texture")
	}
	return frame.Present()
}

func (r *Renderer) record(encoder hal.CommandEncoder, target hal.TextureView) {
	for _, p := range r.passes {
		objects := filterByPass(r.queue, p.Type())
		p.Record(encoder, target, r.globals.BindGroup(), objects)
		slogger().Debug("render: pass recorded", "pass", p.Type(), "objects", len(objects))
	}
}

func filterByPass(objects []*RenderObject, t PassType) []*RenderObject {
	out := make([]*RenderObject, 0, len(objects))
	for _, obj := range objects {
		if obj.Pass == t {
			out = append(out, obj)
		}
	}
	return out
}

func (r *Renderer) clearQueue() {
	clear(r.queue)
	r.queue = r.queue[:0]
}

// State returns the lifecycle state.
func (r *Renderer) State() State { return r.state }

// Context returns the GPU context.
func (r *Renderer) Context() *gpu.Context { return r.ctx }

// Globals returns the group 0 bindings.
func (r *Renderer) Globals() *GlobalBindings { return r.globals }

// Resources returns the renderer's registries.
func (r *Renderer) Resources() *Resources { return r.resources }

// CreateShader loads WGSL from path and builds it against the global
// layout. The shader is not registered.
func (r *Renderer) CreateShader(path string) (*gpu.Shader, error) {
	return r.ctx.CreateShader(path, r.globals.Layout())
}

// CreateShaderFromSource builds WGSL source against the global layout.
func (r *Renderer) CreateShaderFromSource(label, source string) (*gpu.Shader, error) {
	return r.ctx.CreateShaderFromSource(gpu.ShaderDescriptor{
		Label:        label,
		Source:       source,
		GlobalLayout: r.globals.Layout(),
	})
}

// CreateMaterial binds texture with the trilinear sampler against shader's
// material layout.
func (r *Renderer) CreateMaterial(label string, shader *gpu.Shader, texture *gpu.Texture) (*Material, error) {
	return NewMaterial(r.ctx, label, shader, texture, r.globals.linear)
}

// CreateMesh uploads a mesh.
func (r *Renderer) CreateMesh(label string, vertices []gpu.Vertex, indices []uint16) (*Mesh, error) {
	return NewMesh(r.ctx, label, vertices, indices)
}

// Close destroys the registered resources, the global bindings and the GPU
// context. Safe to call twice.
func (r *Renderer) Close() {
	if r.state == StateClosed {
		return
	}
	r.clearQueue()
	r.resources.Destroy()
	r.globals.Destroy()
	r.ctx.Destroy()
	r.state = StateClosed
}
