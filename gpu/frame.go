// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Frame is one acquired surface texture and its render view.
// Exactly one of Present or Discard must be called.
type Frame struct {
	ctx      *Context
	texture  hal.SurfaceTexture
	view     hal.TextureView
	released bool

	// Suboptimal is set when the surface still presents but should be
	// reconfigured.
	Suboptimal bool
}

// View returns the color view to render into.
func (f *Frame) View() hal.TextureView { return f.view }

// AcquireFrame acquires the next presentable texture and creates a view
// for it. Backend surface errors are returned unwrapped so callers can
// match them with errors.Is.
func (c *Context) AcquireFrame() (*Frame, error) {
	if c.destroyed {
		return nil, ErrContextDestroyed
	}
	if !c.configured {
		return nil, ErrSurfaceNotConfigured
	}
	acquired, err := c.surface.AcquireTexture(nil)
	if err != nil {
		return nil, err
	}
	view, err := c.device.CreateTextureView(acquired.Texture, &hal.TextureViewDescriptor{
		Label:         "g3d_frame_view",
		Format:        c.config.Format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		c.surface.DiscardTexture(acquired.Texture)
		return nil, fmt.Errorf("gpu: create frame view: %w", err)
	}
	return &Frame{
		ctx:        c,
		texture:    acquired.Texture,
		view:       view,
		Suboptimal: acquired.Suboptimal,
	}, nil
}

// Present queues the frame for display and releases its view.
func (f *Frame) Present() error {
	if f.released {
		return ErrFrameReleased
	}
	f.released = true
	err := f.ctx.queue.Present(f.ctx.surface, f.texture, nil)
	f.ctx.device.DestroyTextureView(f.view)
	if err != nil {
		return err
	}
	f.ctx.presented++
	return nil
}

// Discard releases the frame without presenting it.
func (f *Frame) Discard() {
	if f.released {
		return
	}
	f.released = true
	f.ctx.device.DestroyTextureView(f.view)
	f.ctx.surface.DiscardTexture(f.texture)
}

// BeginEncoding creates a command encoder and opens it for recording.
func (c *Context) BeginEncoding(label string) (hal.CommandEncoder, error) {
	if c.destroyed {
		return nil, ErrContextDestroyed
	}
	encoder, err := c.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return nil, fmt.Errorf("gpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(label); err != nil {
		return nil, fmt.Errorf("gpu: begin encoding: %w", err)
	}
	return encoder, nil
}

// Submit finishes encoder, submits it and blocks until the device is idle.
// A device wait that times out returns an error matching ErrSubmitTimeout.
func (c *Context) Submit(encoder hal.CommandEncoder) error {
	if c.destroyed {
		return ErrContextDestroyed
	}
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("gpu: end encoding: %w", err)
	}
	defer c.device.FreeCommandBuffer(cmdBuf)

	index, err := c.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("gpu: submit: %w", err)
	}
	c.submission = index
	if err := c.device.WaitIdle(); err != nil {
		if errors.Is(err, hal.ErrTimeout) {
			return fmt.Errorf("%w: submission %d: %w", ErrSubmitTimeout, index, err)
		}
		return fmt.Errorf("gpu: wait for submission %d: %w", index, err)
	}
	return nil
}

// Submission returns the queue index of the last submitted command buffer.
func (c *Context) Submission() uint64 { return c.submission }

// Presented returns the number of frames presented so far.
func (c *Context) Presented() uint64 { return c.presented }
