package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/g3d/gpu"
)

// UniformSize is the size of the global uniform block: one mat4.
const UniformSize = 64

// openGLToWGPU remaps clip-space depth from OpenGL's [-1, 1] to the
// [0, 1] range WebGPU expects. Column-major.
var openGLToWGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Camera is a right-handed perspective camera.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	// Aspect is width / height.
	Aspect float32
	// FovY is the vertical field of view in degrees.
	FovY  float32
	ZNear float32
	ZFar  float32
}

// DefaultCamera looks at the origin from (0, 1, 2) with a 45 degree field
// of view and clip planes at 0.1 and 100.
func DefaultCamera(aspect float32) Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 1, 2},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Aspect: aspect,
		FovY:   45,
		ZNear:  0.1,
		ZFar:   100,
	}
}

// View returns the world-to-view matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective matrix with WebGPU depth range.
func (c Camera) Projection() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.ZNear, c.ZFar)
	return openGLToWGPU.Mul4(proj)
}

// ViewProjection returns Projection * View. It depends only on the
// camera's fields.
func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Uniform returns the view-projection matrix as the 64-byte column-major
// uniform block.
func (c Camera) Uniform() []byte {
	vp := c.ViewProjection()
	return gpu.PackFloat32s(vp[:])
}
