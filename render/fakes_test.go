package render

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// recordingEncoder hands out recordingPass encoders. Methods other than
// BeginRenderPass panic through the nil embedded interface.
type recordingEncoder struct {
	hal.CommandEncoder
	descs  []*hal.RenderPassDescriptor
	passes []*recordingPass
}

func (e *recordingEncoder) BeginRenderPass(desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	p := &recordingPass{}
	e.descs = append(e.descs, desc)
	e.passes = append(e.passes, p)
	return p
}

type drawCall struct {
	indexCount, instanceCount, firstIndex uint32
	baseVertex                            int32
	firstInstance                         uint32
}

// recordingPass records the state-setting and draw calls made on it.
type recordingPass struct {
	hal.RenderPassEncoder
	calls       []string
	bindGroups  map[uint32]hal.BindGroup
	indexFormat gputypes.IndexFormat
	draws       []drawCall
	ended       bool
}

func (p *recordingPass) SetPipeline(hal.RenderPipeline) {
	p.calls = append(p.calls, "pipeline")
}

func (p *recordingPass) SetBindGroup(index uint32, group hal.BindGroup, _ []uint32) {
	if p.bindGroups == nil {
		p.bindGroups = make(map[uint32]hal.BindGroup)
	}
	p.bindGroups[index] = group
	p.calls = append(p.calls, "bind")
}

func (p *recordingPass) SetVertexBuffer(uint32, hal.Buffer, uint64) {
	p.calls = append(p.calls, "vertex")
}

func (p *recordingPass) SetIndexBuffer(_ hal.Buffer, format gputypes.IndexFormat, _ uint64) {
	p.indexFormat = format
	p.calls = append(p.calls, "index")
}

func (p *recordingPass) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.draws = append(p.draws, drawCall{indexCount, instanceCount, firstIndex, baseVertex, firstInstance})
	p.calls = append(p.calls, "draw")
}

func (p *recordingPass) End() { p.ended = true }

// capturePass records the objects handed to it each frame.
type capturePass struct {
	typ    PassType
	frames [][]*RenderObject
}

func (p *capturePass) Type() PassType { return p.typ }

func (p *capturePass) Record(_ hal.CommandEncoder, _ hal.TextureView, _ hal.BindGroup, objects []*RenderObject) {
	p.frames = append(p.frames, append([]*RenderObject(nil), objects...))
}
