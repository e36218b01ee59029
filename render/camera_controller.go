package render

// Direction is a camera movement input.
type Direction int

// Movement directions.
const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// CameraController moves a Camera from directional input. Forward and
// backward dolly the eye toward or away from the target; left and right
// orbit the eye around it at constant distance.
type CameraController struct {
	// Speed is the distance moved per Update.
	Speed float32

	// -1, 0 or 1 on each axis.
	dx, dy int
}

// NewCameraController returns a controller moving speed units per Update.
func NewCameraController(speed float32) *CameraController {
	return &CameraController{Speed: speed}
}

// SetPressed records a press or release of d. A release clears the axis d
// belongs to.
func (c *CameraController) SetPressed(d Direction, pressed bool) {
	v := 0
	if pressed {
		v = 1
	}
	switch d {
	case Forward:
		c.dy = v
	case Backward:
		c.dy = -v
	case Left:
		c.dx = -v
	case Right:
		c.dx = v
	}
}

// Moving reports whether any direction is held.
func (c *CameraController) Moving() bool { return c.dx != 0 || c.dy != 0 }

// Update applies one step of the held input to cam.
func (c *CameraController) Update(cam *Camera) {
	forward := cam.Target.Sub(cam.Eye)
	dist := forward.Len()
	if dist == 0 {
		return
	}
	if dist > c.Speed {
		cam.Eye = cam.Eye.Add(forward.Normalize().Mul(c.Speed * float32(c.dy)))
	}
	if c.dx == 0 {
		return
	}

	right := forward.Cross(cam.Up)
	forward = cam.Target.Sub(cam.Eye)
	dist = forward.Len()
	orbit := forward.Add(right.Mul(c.Speed * float32(c.dx))).Normalize()
	cam.Eye = cam.Target.Sub(orbit.Mul(dist))
}
