// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"

	"github.com/gogpu/g3d/internal/cache"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Context owns the device, queue and presentable surface of one window and
// provides the resource-creation primitives the renderer builds on.
//
// A Context is used from a single goroutine.
type Context struct {
	instance hal.Instance
	surface  hal.Surface
	adapter  hal.Adapter
	info     gputypes.AdapterInfo
	device   hal.Device
	queue    hal.Queue

	config     SurfaceConfig
	configured bool
	destroyed  bool

	submission uint64
	presented  uint64

	opts  options
	spirv *cache.Sharded[string, spirvResult]
}

// New creates an instance, a surface for window, picks an adapter that can
// present to it, opens a device and configures the surface at the window's
// current size.
//
// Errors are *InitError values matching ErrAdapterUnavailable,
// ErrDeviceRequestFailed or ErrSurfaceCreationFailed under errors.Is.
func New(window Window, opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	backend := o.backend
	if backend == nil {
		b, ok := hal.GetBackend(o.backendType)
		if !ok {
			return nil, initErr(ErrAdapterUnavailable, fmt.Errorf("backend %v not registered", o.backendType))
		}
		backend = b
	}

	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, initErr(ErrAdapterUnavailable, fmt.Errorf("create instance: %w", err))
	}
	c := &Context{
		instance: instance,
		opts:     o,
		spirv:    cache.NewSharded[string, spirvResult](o.cacheSize, cache.StringHasher),
	}

	surface, err := window.CreateSurface(instance)
	if err != nil {
		c.Destroy()
		return nil, initErr(ErrSurfaceCreationFailed, err)
	}
	c.surface = surface

	selected := selectAdapter(instance.EnumerateAdapters(surface))
	if selected == nil {
		c.Destroy()
		return nil, initErr(ErrAdapterUnavailable, nil)
	}
	c.adapter = selected.Adapter
	c.info = selected.Info

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		c.Destroy()
		return nil, initErr(ErrDeviceRequestFailed, err)
	}
	c.device = openDev.Device
	c.queue = openDev.Queue

	c.config = chooseSurfaceConfig(selected.Adapter.SurfaceCapabilities(surface), o.presentMode)
	w, h := window.Size()
	if err := c.Resize(w, h); err != nil {
		c.Destroy()
		return nil, initErr(ErrSurfaceCreationFailed, err)
	}

	slogger().Info("gpu: context ready",
		"adapter", c.info.Name,
		"format", c.config.Format,
		"present_mode", c.config.PresentMode,
		"width", w, "height", h)
	return c, nil
}

// Resize stores the new surface size and reconfigures the surface. A zero
// width or height marks the surface unconfigured and skips reconfiguration;
// AcquireFrame fails with ErrSurfaceNotConfigured until a non-zero resize.
func (c *Context) Resize(width, height uint32) error {
	if c.destroyed {
		return ErrContextDestroyed
	}
	c.config.Width = width
	c.config.Height = height
	if width == 0 || height == 0 {
		c.configured = false
		slogger().Debug("gpu: surface unconfigured", "width", width, "height", height)
		return nil
	}
	return c.configure()
}

// Reconfigure reapplies the stored configuration. Used after the surface
// reports itself lost or outdated. No-op while the size is zero.
func (c *Context) Reconfigure() error {
	if c.destroyed {
		return ErrContextDestroyed
	}
	if c.config.Width == 0 || c.config.Height == 0 {
		return nil
	}
	return c.configure()
}

func (c *Context) configure() error {
	err := c.surface.Configure(c.device, &hal.SurfaceConfiguration{
		Width:       c.config.Width,
		Height:      c.config.Height,
		Format:      c.config.Format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: c.config.PresentMode,
		AlphaMode:   c.config.AlphaMode,
	})
	if err != nil {
		c.configured = false
		return fmt.Errorf("gpu: configure surface %dx%d: %w", c.config.Width, c.config.Height, err)
	}
	c.configured = true
	slogger().Debug("gpu: surface configured", "width", c.config.Width, "height", c.config.Height)
	return nil
}

// Configured reports whether the surface has a non-zero configuration.
func (c *Context) Configured() bool { return c.configured }

// Config returns the current surface configuration.
func (c *Context) Config() SurfaceConfig { return c.config }

// Device returns the logical device.
func (c *Context) Device() hal.Device { return c.device }

// Queue returns the command queue.
func (c *Context) Queue() hal.Queue { return c.queue }

// Adapter returns the adapter the device was opened on.
func (c *Context) Adapter() hal.Adapter { return c.adapter }

// AdapterInfo describes the selected adapter.
func (c *Context) AdapterInfo() gputypes.AdapterInfo { return c.info }

// Destroy releases the device, surface and instance. Safe to call twice.
func (c *Context) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.configured = false
	if c.surface != nil && c.device != nil {
		c.surface.Unconfigure(c.device)
	}
	if c.device != nil {
		c.device.Destroy()
		c.device = nil
		c.queue = nil
	}
	if c.surface != nil {
		c.surface.Destroy()
		c.surface = nil
	}
	if c.instance != nil {
		c.instance.Destroy()
		c.instance = nil
	}
}
