package gpu

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Default shader entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// CompileWGSL compiles WGSL source to SPIR-V words.
func CompileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, err
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("spir-v length %d is not a multiple of 4", len(spirvBytes))
	}
	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

type spirvResult struct {
	words []uint32
	err   error
}

// compile returns cached SPIR-V for source, compiling on first use.
func (c *Context) compile(source string) ([]uint32, error) {
	r := c.spirv.GetOrCreate(source, func() spirvResult {
		words, err := CompileWGSL(source)
		return spirvResult{words: words, err: err}
	})
	return r.words, r.err
}

// ShaderDescriptor describes a render pipeline built from one WGSL module.
type ShaderDescriptor struct {
	Label  string
	Source string

	// GlobalLayout is bound at group 0. Required.
	GlobalLayout hal.BindGroupLayout

	// MaterialLayout is bound at group 1. When nil the Shader creates and
	// owns a MaterialLayout.
	MaterialLayout hal.BindGroupLayout

	// Format of the color target. Default: the surface format.
	Format gputypes.TextureFormat

	// DoubleSided disables back-face culling.
	DoubleSided bool
}

// Shader is a compiled module, its render pipeline and the layouts the
// pipeline was built against. Immutable after creation.
type Shader struct {
	ctx            *Context
	label          string
	module         hal.ShaderModule
	pipelineLayout hal.PipelineLayout
	pipeline       hal.RenderPipeline
	globalLayout   hal.BindGroupLayout
	materialLayout hal.BindGroupLayout
	ownsMaterial   bool
}

// CreateShader reads WGSL from path and builds a pipeline for the surface
// format. Read failures are *AssetLoadError with Kind AssetIO, compile
// failures Kind AssetShaderCompile.
func (c *Context) CreateShader(path string, globalLayout hal.BindGroupLayout) (*Shader, error) {
	src, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &AssetLoadError{Kind: AssetIO, Path: path, Err: err}
	}
	return c.CreateShaderFromSource(ShaderDescriptor{
		Label:        filepath.Base(path),
		Source:       string(src),
		GlobalLayout: globalLayout,
	})
}

// CreateShaderFromSource compiles desc.Source and builds its pipeline.
// Compile failures are *AssetLoadError with Kind AssetShaderCompile and
// Path set to the label.
func (c *Context) CreateShaderFromSource(desc ShaderDescriptor) (*Shader, error) {
	if c.destroyed {
		return nil, ErrContextDestroyed
	}
	if desc.GlobalLayout == nil {
		return nil, fmt.Errorf("gpu: shader %s: nil global layout", desc.Label)
	}
	if desc.Format == gputypes.TextureFormatUndefined {
		desc.Format = c.config.Format
	}

	words, err := c.compile(desc.Source)
	if err != nil {
		return nil, &AssetLoadError{Kind: AssetShaderCompile, Path: desc.Label, Err: err}
	}

	s := &Shader{ctx: c, label: desc.Label, globalLayout: desc.GlobalLayout}
	if err := s.build(desc, words); err != nil {
		s.Destroy()
		return nil, err
	}
	slogger().Debug("gpu: shader created", "label", desc.Label, "spirv_words", len(words))
	return s, nil
}

func (s *Shader) build(desc ShaderDescriptor, words []uint32) error {
	c := s.ctx
	module, err := c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  desc.Label,
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		return fmt.Errorf("gpu: create shader module %s: %w", desc.Label, err)
	}
	s.module = module

	s.materialLayout = desc.MaterialLayout
	if s.materialLayout == nil {
		layout, err := MaterialLayout(c)
		if err != nil {
			return err
		}
		s.materialLayout = layout
		s.ownsMaterial = true
	}

	pipeLayout, err := c.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            desc.Label + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{s.globalLayout, s.materialLayout},
	})
	if err != nil {
		return fmt.Errorf("gpu: create pipeline layout %s: %w", desc.Label, err)
	}
	s.pipelineLayout = pipeLayout

	cull := gputypes.CullModeBack
	if desc.DoubleSided {
		cull = gputypes.CullModeNone
	}
	pipeline, err := c.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  desc.Label + "_pipeline",
		Layout: s.pipelineLayout,
		Vertex: hal.VertexState{
			Module:     s.module,
			EntryPoint: VertexEntryPoint,
			Buffers:    []gputypes.VertexBufferLayout{VertexLayout(), InstanceLayout()},
		},
		Fragment: &hal.FragmentState{
			Module:     s.module,
			EntryPoint: FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    desc.Format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  cull,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create render pipeline %s: %w", desc.Label, err)
	}
	s.pipeline = pipeline
	return nil
}

// Label returns the shader's debug label.
func (s *Shader) Label() string { return s.label }

// Pipeline returns the render pipeline.
func (s *Shader) Pipeline() hal.RenderPipeline { return s.pipeline }

// GlobalLayout returns the group 0 layout.
func (s *Shader) GlobalLayout() hal.BindGroupLayout { return s.globalLayout }

// MaterialLayout returns the group 1 layout material bind groups are
// created against.
func (s *Shader) MaterialLayout() hal.BindGroupLayout { return s.materialLayout }

// Destroy frees the pipeline, pipeline layout, module and, if the Shader
// created it, the material layout. The global layout is not touched.
func (s *Shader) Destroy() {
	if s.ctx == nil || s.ctx.device == nil {
		return
	}
	d := s.ctx.device
	if s.pipeline != nil {
		d.DestroyRenderPipeline(s.pipeline)
		s.pipeline = nil
	}
	if s.pipelineLayout != nil {
		d.DestroyPipelineLayout(s.pipelineLayout)
		s.pipelineLayout = nil
	}
	if s.ownsMaterial && s.materialLayout != nil {
		d.DestroyBindGroupLayout(s.materialLayout)
		s.materialLayout = nil
	}
	if s.module != nil {
		d.DestroyShaderModule(s.module)
		s.module = nil
	}
}
