package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/g3d/gpu"
)

func TestInstanceMatrix(t *testing.T) {
	inst := Instance{
		Position: mgl32.Vec3{1, 2, 3},
		Rotation: mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0}),
	}
	m := inst.Matrix()

	if d := m.Det(); !near(d, 1, 1e-5) {
		t.Errorf("det = %v, want 1 for a rigid transform", d)
	}
	// Y is the rotation axis and stays put.
	if up := m.Mul4x1(mgl32.Vec4{0, 1, 0, 0}); !nearVec4(up, mgl32.Vec4{0, 1, 0, 0}, 1e-5) {
		t.Errorf("rotated +Y = %v, want [0 1 0 0]", up)
	}

	if got := m.Col(3); got != (mgl32.Vec4{1, 2, 3, 1}) {
		t.Errorf("translation column = %v, want [1 2 3 1]", got)
	}
	// +X rotated a quarter turn about Y lands on -Z.
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 0})
	if !nearVec4(p, mgl32.Vec4{0, 0, -1, 0}, 1e-5) {
		t.Errorf("rotated +X = %v, want [0 0 -1 0]", p)
	}
}

func TestPackInstances(t *testing.T) {
	instances := []Instance{
		{Position: mgl32.Vec3{0, 0, 0}, Rotation: mgl32.QuatIdent()},
		{Position: mgl32.Vec3{4, 0, -5}, Rotation: mgl32.QuatIdent()},
	}
	buf := PackInstances(instances)
	if len(buf) != 2*gpu.InstanceStride {
		t.Fatalf("len = %d, want %d", len(buf), 2*gpu.InstanceStride)
	}
	want := PackMatrices([]mgl32.Mat4{instances[0].Matrix(), instances[1].Matrix()})
	if string(buf) != string(want) {
		t.Error("PackInstances disagrees with PackMatrices of the instance matrices")
	}
	if n := len(PackInstances(nil)); n != 0 {
		t.Errorf("PackInstances(nil) has %d bytes, want 0", n)
	}
}
