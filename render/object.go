package render

import (
	"fmt"

	"github.com/gogpu/g3d/gpu"
)

// PassType selects which pass draws a RenderObject.
type PassType int

const (
	// Opaque objects are drawn by the main pass in push order.
	Opaque PassType = iota
	// Transparent objects are accepted but not drawn yet.
	Transparent
)

// String returns the pass name.
func (p PassType) String() string {
	switch p {
	case Opaque:
		return "opaque"
	case Transparent:
		return "transparent"
	default:
		return fmt.Sprintf("PassType(%d)", int(p))
	}
}

// RenderObject is one instanced draw for the current frame.
type RenderObject struct {
	Mesh     *Mesh
	Material *Material
	Pass     PassType

	// Instances holds InstanceCount model matrices.
	Instances     *gpu.Buffer
	InstanceCount uint32
}

func (o *RenderObject) validate() error {
	switch {
	case o == nil:
		return fmt.Errorf("%w: nil object", ErrInvalidObject)
	case o.Mesh == nil:
		return fmt.Errorf("%w: no mesh", ErrInvalidObject)
	case o.Material == nil:
		return fmt.Errorf("%w: no material", ErrInvalidObject)
	case o.Material.Shader == nil:
		return fmt.Errorf("%w: material has no shader", ErrInvalidObject)
	case o.Instances == nil:
		return fmt.Errorf("%w: no instance buffer", ErrInvalidObject)
	}
	return nil
}
