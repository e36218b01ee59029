package render

import (
	"fmt"

	"github.com/gogpu/g3d/gpu"
)

// Mesh is an indexed triangle list on the GPU. Indices are uint16.
// Immutable after creation.
type Mesh struct {
	Vertices   *gpu.Buffer
	Indices    *gpu.Buffer
	NumIndices uint32
	StartIndex uint32
}

// NewMesh uploads vertices and indices.
func NewMesh(ctx *gpu.Context, label string, vertices []gpu.Vertex, indices []uint16) (*Mesh, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("render: mesh %s: no geometry", label)
	}
	vb, err := ctx.NewVertexBuffer(label+"_vertices", gpu.PackVertices(vertices))
	if err != nil {
		return nil, fmt.Errorf("render: mesh %s: %w", label, err)
	}
	ib, err := ctx.NewIndexBuffer(label+"_indices", gpu.PackIndices(indices))
	if err != nil {
		vb.Destroy()
		return nil, fmt.Errorf("render: mesh %s: %w", label, err)
	}
	return &Mesh{
		Vertices:   vb,
		Indices:    ib,
		NumIndices: uint32(len(indices)), //nolint:gosec // uint16 index buffers stay small
	}, nil
}

// Destroy frees both buffers.
func (m *Mesh) Destroy() {
	if m.Vertices != nil {
		m.Vertices.Destroy()
	}
	if m.Indices != nil {
		m.Indices.Destroy()
	}
}
