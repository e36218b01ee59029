package render

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// near reports whether a and b differ by at most eps. mgl32's threshold
// helpers switch to a relative test away from zero and a squared one at
// zero, neither of which suits values expected to be exactly 0.
func near(a, b, eps float32) bool {
	return math.Abs(float64(a)-float64(b)) <= float64(eps)
}

func nearVec4(a, b mgl32.Vec4, eps float32) bool {
	for i := range a {
		if !near(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func TestViewProjectionIdempotent(t *testing.T) {
	cam := DefaultCamera(4.0 / 3.0)
	a := cam.ViewProjection()
	b := cam.ViewProjection()
	if a != b {
		t.Errorf("ViewProjection differs between calls:\n%v\n%v", a, b)
	}
	if string(cam.Uniform()) != string(cam.Uniform()) {
		t.Error("Uniform differs between calls")
	}
}

func TestCameraUniformLayout(t *testing.T) {
	cam := DefaultCamera(1)
	u := cam.Uniform()
	if len(u) != UniformSize {
		t.Fatalf("len(Uniform()) = %d, want %d", len(u), UniformSize)
	}
	vp := cam.ViewProjection()
	for i := range 16 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(u[i*4:]))
		if got != vp[i] {
			t.Errorf("uniform[%d] = %v, want %v (column-major)", i, got, vp[i])
		}
	}
}

func TestCameraDepthRange(t *testing.T) {
	cam := Camera{
		Eye:    mgl32.Vec3{0, 0, 0},
		Target: mgl32.Vec3{0, 0, -1},
		Up:     mgl32.Vec3{0, 1, 0},
		Aspect: 1,
		FovY:   45,
		ZNear:  0.1,
		ZFar:   100,
	}
	vp := cam.ViewProjection()

	tests := []struct {
		name  string
		dist  float32
		depth float32
	}{
		{"near plane", cam.ZNear, 0},
		{"far plane", cam.ZFar, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := vp.Mul4x1(mgl32.Vec4{0, 0, -tt.dist, 1})
			if got := clip.Z() / clip.W(); !near(got, tt.depth, 1e-3) {
				t.Errorf("depth = %v, want %v", got, tt.depth)
			}
		})
	}
}

func TestCameraAspectChangesProjection(t *testing.T) {
	wide := DefaultCamera(2)
	tall := DefaultCamera(0.5)
	if wide.Projection() == tall.Projection() {
		t.Error("projection ignores aspect")
	}
	if wide.View() != tall.View() {
		t.Error("view depends on aspect")
	}
}

func TestCameraControllerDolly(t *testing.T) {
	cam := DefaultCamera(1)
	start := cam.Target.Sub(cam.Eye).Len()

	c := NewCameraController(0.2)
	c.SetPressed(Forward, true)
	c.Update(&cam)

	if got := cam.Target.Sub(cam.Eye).Len(); !mgl32.FloatEqualThreshold(got, start-0.2, 1e-5) {
		t.Errorf("distance after forward = %v, want %v", got, start-0.2)
	}

	c.SetPressed(Forward, false)
	if c.Moving() {
		t.Error("Moving() = true after release")
	}
	before := cam.Eye
	c.Update(&cam)
	if cam.Eye != before {
		t.Errorf("eye moved without input: %v -> %v", before, cam.Eye)
	}

	c.SetPressed(Backward, true)
	c.Update(&cam)
	if got := cam.Target.Sub(cam.Eye).Len(); !mgl32.FloatEqualThreshold(got, start, 1e-5) {
		t.Errorf("distance after backward = %v, want %v", got, start)
	}
}

func TestCameraControllerStopsAtTarget(t *testing.T) {
	cam := DefaultCamera(1)
	cam.Eye = mgl32.Vec3{0, 0, 0.1}
	c := NewCameraController(0.2)
	c.SetPressed(Forward, true)
	c.Update(&cam)

	if cam.Eye != (mgl32.Vec3{0, 0, 0.1}) {
		t.Errorf("eye = %v, want unchanged when closer than speed", cam.Eye)
	}
}

func TestCameraControllerOrbitKeepsDistance(t *testing.T) {
	cam := DefaultCamera(1)
	dist := cam.Target.Sub(cam.Eye).Len()

	c := NewCameraController(0.2)
	c.SetPressed(Right, true)
	for range 10 {
		c.Update(&cam)
	}

	if got := cam.Target.Sub(cam.Eye).Len(); !mgl32.FloatEqualThreshold(got, dist, 1e-4) {
		t.Errorf("orbit distance = %v, want %v", got, dist)
	}
	if cam.Eye.X() >= 0 {
		t.Errorf("eye.x = %v, right orbit should move it negative", cam.Eye.X())
	}
}
