package gpu

import "github.com/gogpu/wgpu/hal"

// Window is the presentation target a Context renders into.
//
// Implementations own the platform handles. A GLFW window, for example,
// passes its X11 display and window (or HWND) to instance.CreateSurface.
type Window interface {
	// Size returns the framebuffer size in pixels.
	Size() (width, height uint32)

	// CreateSurface creates a presentable surface for this window on the
	// given instance.
	CreateSurface(instance hal.Instance) (hal.Surface, error)
}
