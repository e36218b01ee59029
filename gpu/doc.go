// Package gpu owns the device, queue and window surface of a g3d renderer
// and wraps the gogpu/wgpu HAL resource-creation calls the renderer needs.
//
// # Context
//
// New creates an instance from a HAL backend (Vulkan by default), asks the
// Window for a surface, selects an adapter and opens a device. The surface
// is configured with the first sRGB format it supports and Mailbox present
// mode when available, Fifo otherwise.
//
//	ctx, err := gpu.New(window)
//	if err != nil {
//	    return err // *gpu.InitError
//	}
//	defer ctx.Destroy()
//
// A zero-sized Resize leaves the surface unconfigured. AcquireFrame then
// returns ErrSurfaceNotConfigured until a non-zero Resize arrives.
//
// # Resources
//
// Buffers, textures, samplers, bind groups and shaders are created through
// the Context. Textures are decoded from image files; shaders are WGSL
// compiled to SPIR-V with naga and cached by source.
//
// # Backends
//
// Import a HAL backend for its registration side effect:
//
//	import _ "github.com/gogpu/wgpu/hal/vulkan"
//
// Tests use the noop backend through WithBackend.
package gpu
