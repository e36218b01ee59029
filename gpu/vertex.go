package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// Vertex buffer strides in bytes.
const (
	VertexStride   = 20 // position vec3 + uv vec2
	InstanceStride = 64 // one column-major mat4
)

// Vertex is one mesh vertex.
type Vertex struct {
	Position  [3]float32
	TexCoords [2]float32
}

// VertexLayout describes Vertex: position at location 0, uv at location 1.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1}, // tex_coords
		},
	}
}

// InstanceLayout describes a per-instance model matrix as four vec4
// columns at locations 5 through 8.
func InstanceLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: InstanceStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 5},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 6},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 7},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 8},
		},
	}
}

// PackVertices encodes vertices in VertexLayout order, little-endian.
func PackVertices(vertices []Vertex) []byte {
	buf := make([]byte, 0, len(vertices)*VertexStride)
	for _, v := range vertices {
		buf = appendFloat32s(buf, v.Position[:]...)
		buf = appendFloat32s(buf, v.TexCoords[:]...)
	}
	return buf
}

// PackIndices encodes 16-bit indices, little-endian.
func PackIndices(indices []uint16) []byte {
	buf := make([]byte, 0, len(indices)*2)
	for _, i := range indices {
		buf = binary.LittleEndian.AppendUint16(buf, i)
	}
	return buf
}

// PackFloat32s encodes values, little-endian.
func PackFloat32s(values []float32) []byte {
	return appendFloat32s(make([]byte, 0, len(values)*4), values...)
}

func appendFloat32s(buf []byte, values ...float32) []byte {
	for _, f := range values {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}
