// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gputest provides a headless window and surface for tests. The
// surface is backed by textures from whatever device configures it, so it
// works with the noop HAL backend.
package gputest

import (
	"errors"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// Backend returns the noop HAL backend.
func Backend() hal.Backend { return &noop.API{} }

// Window is a fixed-size window whose surface is a *Surface.
type Window struct {
	Width, Height uint32
	Surface       *Surface
	// Err, when set, is returned by CreateSurface.
	Err error
}

// NewWindow returns a width x height window with a fresh Surface.
func NewWindow(width, height uint32) *Window {
	return &Window{Width: width, Height: height, Surface: &Surface{}}
}

// Size returns the window size.
func (w *Window) Size() (uint32, uint32) { return w.Width, w.Height }

// CreateSurface returns w.Surface, or w.Err.
func (w *Window) CreateSurface(hal.Instance) (hal.Surface, error) {
	if w.Err != nil {
		return nil, w.Err
	}
	return w.Surface, nil
}

// surfaceTexture adapts a device texture to hal.SurfaceTexture.
type surfaceTexture struct {
	hal.Texture
}

// ErrNotConfigured is returned by AcquireTexture before Configure.
var ErrNotConfigured = errors.New("gputest: surface not configured")

// Surface records configuration and acquisition calls. Methods not listed
// here panic through the nil embedded interface.
type Surface struct {
	hal.Surface

	device  hal.Device
	texture hal.Texture

	// Configs holds every configuration applied, in order.
	Configs []hal.SurfaceConfiguration
	// Unconfigured counts Unconfigure calls.
	Unconfigured int
	// Acquired and Discarded count texture acquisitions and discards.
	Acquired, Discarded int
	// Destroyed is set by Destroy.
	Destroyed bool

	// AcquireErr, when set, is returned by the next AcquireTexture and
	// then cleared.
	AcquireErr error
}

// Configure records cfg and remembers the device for texture allocation.
func (s *Surface) Configure(device hal.Device, cfg *hal.SurfaceConfiguration) error {
	s.device = device
	s.Configs = append(s.Configs, *cfg)
	return nil
}

// Unconfigure counts the call.
func (s *Surface) Unconfigure(hal.Device) { s.Unconfigured++ }

// AcquireTexture returns a texture sized to the last configuration.
func (s *Surface) AcquireTexture(hal.Fence) (*hal.AcquiredSurfaceTexture, error) {
	if err := s.AcquireErr; err != nil {
		s.AcquireErr = nil
		return nil, err
	}
	if s.device == nil || len(s.Configs) == 0 {
		return nil, ErrNotConfigured
	}
	if s.texture == nil {
		cfg := s.Configs[len(s.Configs)-1]
		tex, err := s.device.CreateTexture(&hal.TextureDescriptor{
			Label:         "gputest_surface",
			Size:          hal.Extent3D{Width: cfg.Width, Height: cfg.Height, DepthOrArrayLayers: 1},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        cfg.Format,
			Usage:         gputypes.TextureUsageRenderAttachment,
		})
		if err != nil {
			return nil, err
		}
		s.texture = tex
	}
	s.Acquired++
	return &hal.AcquiredSurfaceTexture{Texture: surfaceTexture{s.texture}}, nil
}

// DiscardTexture counts the call.
func (s *Surface) DiscardTexture(hal.SurfaceTexture) { s.Discarded++ }

// Destroy marks the surface destroyed.
func (s *Surface) Destroy() { s.Destroyed = true }

// LastConfig returns the most recent configuration.
func (s *Surface) LastConfig() (hal.SurfaceConfiguration, bool) {
	if len(s.Configs) == 0 {
		return hal.SurfaceConfiguration{}, false
	}
	return s.Configs[len(s.Configs)-1], true
}
