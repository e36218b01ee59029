// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ClearColor is the background the main pass clears to.
var ClearColor = gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}

// Pass records draws for one PassType into a frame.
type Pass interface {
	// Type reports which objects the pass draws.
	Type() PassType

	// Record draws objects into target. objects holds only objects of
	// the pass's type, in push order.
	Record(encoder hal.CommandEncoder, target hal.TextureView, globals hal.BindGroup, objects []*RenderObject)
}

// MainPass clears the target and draws opaque objects.
type MainPass struct {
	Clear gputypes.Color
}

// NewMainPass returns a MainPass clearing to ClearColor.
func NewMainPass() *MainPass { return &MainPass{Clear: ClearColor} }

// Type returns Opaque.
func (p *MainPass) Type() PassType { return Opaque }

// Record clears target and draws objects in order.
func (p *MainPass) Record(encoder hal.CommandEncoder, target hal.TextureView, globals hal.BindGroup, objects []*RenderObject) {
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "g3d_main_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       target,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: p.Clear,
		}},
	})
	RecordDraws(rp, globals, objects)
	rp.End()
}

// RecordDraws records one instanced indexed draw per object into an open
// render pass. Global bindings go to group 0, the material to group 1, the
// mesh to vertex slot 0 and the instances to slot 1.
func RecordDraws(rp hal.RenderPassEncoder, globals hal.BindGroup, objects []*RenderObject) {
	for _, obj := range objects {
		rp.SetPipeline(obj.Material.Shader.Pipeline())
		rp.SetBindGroup(0, globals, nil)
		rp.SetBindGroup(1, obj.Material.BindGroup, nil)
		rp.SetVertexBuffer(0, obj.Mesh.Vertices.Raw(), 0)
		rp.SetVertexBuffer(1, obj.Instances.Raw(), 0)
		rp.SetIndexBuffer(obj.Mesh.Indices.Raw(), gputypes.IndexFormatUint16, 0)
		rp.DrawIndexed(obj.Mesh.NumIndices, obj.InstanceCount, obj.Mesh.StartIndex, 0, 0)
	}
}
