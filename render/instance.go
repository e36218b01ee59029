package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/g3d/gpu"
)

// Instance is the transform of one drawn copy of a mesh.
type Instance struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Matrix returns the model matrix: translation then rotation.
func (i Instance) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(i.Position.X(), i.Position.Y(), i.Position.Z()).Mul4(i.Rotation.Mat4())
}

// PackMatrices encodes model matrices for an instance buffer.
func PackMatrices(models []mgl32.Mat4) []byte {
	buf := make([]byte, 0, len(models)*gpu.InstanceStride)
	for _, m := range models {
		buf = append(buf, gpu.PackFloat32s(m[:])...)
	}
	return buf
}

// PackInstances encodes the model matrices of instances.
func PackInstances(instances []Instance) []byte {
	models := make([]mgl32.Mat4, len(instances))
	for i, inst := range instances {
		models[i] = inst.Matrix()
	}
	return PackMatrices(models)
}

// NewInstanceBuffer uploads model matrices into a per-instance buffer.
func NewInstanceBuffer(ctx *gpu.Context, label string, models []mgl32.Mat4) (*gpu.Buffer, error) {
	return ctx.NewInstanceBuffer(label, PackMatrices(models))
}
