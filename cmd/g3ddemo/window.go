package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/g3d/gpu"
	"github.com/gogpu/wgpu/hal"
)

// glfwWindow adapts a GLFW window to gpu.Window.
type glfwWindow struct {
	w *glfw.Window
}

var _ gpu.Window = glfwWindow{}

// Size returns the framebuffer size, which differs from the window size
// on high-DPI displays.
func (g glfwWindow) Size() (width, height uint32) {
	w, h := g.w.GetFramebufferSize()
	return uint32(max(w, 0)), uint32(max(h, 0)) //nolint:gosec // clamped
}

func (g glfwWindow) CreateSurface(instance hal.Instance) (hal.Surface, error) {
	display, window, err := nativeHandles(g.w)
	if err != nil {
		return nil, err
	}
	return instance.CreateSurface(display, window)
}
