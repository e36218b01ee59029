package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// copyAlignment is the granularity of queue buffer writes.
const copyAlignment = 4

// Buffer is a GPU buffer with the size and usage it was created with.
type Buffer struct {
	ctx   *Context
	buf   hal.Buffer
	label string
	size  uint64
	usage gputypes.BufferUsage
}

// CreateBuffer creates a buffer holding data. CopyDst is always added to
// usage so the buffer can be rewritten with Write. The allocation is padded
// up to a multiple of four bytes.
func (c *Context) CreateBuffer(label string, data []byte, usage gputypes.BufferUsage) (*Buffer, error) {
	b, err := c.CreateEmptyBuffer(label, uint64(len(data)), usage)
	if err != nil {
		return nil, err
	}
	if err := b.Write(0, data); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}

// CreateEmptyBuffer allocates size bytes without uploading anything.
func (c *Context) CreateEmptyBuffer(label string, size uint64, usage gputypes.BufferUsage) (*Buffer, error) {
	if c.destroyed {
		return nil, ErrContextDestroyed
	}
	if size == 0 {
		return nil, fmt.Errorf("create %s: %w", label, ErrEmptyBuffer)
	}
	size = alignUp(size, copyAlignment)
	usage |= gputypes.BufferUsageCopyDst
	buf, err := c.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	slogger().Debug("gpu: buffer created", "label", label, "size", size)
	return &Buffer{ctx: c, buf: buf, label: label, size: size, usage: usage}, nil
}

// NewUniformBuffer creates a uniform buffer initialized with data.
func (c *Context) NewUniformBuffer(label string, data []byte) (*Buffer, error) {
	return c.CreateBuffer(label, data, gputypes.BufferUsageUniform)
}

// NewVertexBuffer creates a vertex buffer initialized with data.
func (c *Context) NewVertexBuffer(label string, data []byte) (*Buffer, error) {
	return c.CreateBuffer(label, data, gputypes.BufferUsageVertex)
}

// NewInstanceBuffer creates a per-instance vertex buffer initialized with
// data.
func (c *Context) NewInstanceBuffer(label string, data []byte) (*Buffer, error) {
	return c.CreateBuffer(label, data, gputypes.BufferUsageVertex)
}

// NewIndexBuffer creates an index buffer initialized with data.
func (c *Context) NewIndexBuffer(label string, data []byte) (*Buffer, error) {
	return c.CreateBuffer(label, data, gputypes.BufferUsageIndex)
}

// Write uploads data at offset through the queue. offset must be a
// multiple of four and data must fit within the buffer; a trailing partial
// word is zero-padded.
func (b *Buffer) Write(offset uint64, data []byte) error {
	if b.buf == nil {
		return fmt.Errorf("write %s: %w", b.label, ErrBufferDestroyed)
	}
	if len(data) == 0 {
		return nil
	}
	if offset%copyAlignment != 0 {
		return fmt.Errorf("write %s: offset %d: %w", b.label, offset, ErrUnalignedWrite)
	}
	if offset > b.size || uint64(len(data)) > b.size-offset {
		return fmt.Errorf("write %s: %d bytes at %d into %d: %w",
			b.label, len(data), offset, b.size, ErrBufferOverflow)
	}
	if rem := len(data) % copyAlignment; rem != 0 {
		padded := make([]byte, len(data)+copyAlignment-rem)
		copy(padded, data)
		data = padded
	}
	if err := b.ctx.queue.WriteBuffer(b.buf, offset, data); err != nil {
		return fmt.Errorf("write %s: %w", b.label, err)
	}
	return nil
}

// Raw returns the HAL buffer.
func (b *Buffer) Raw() hal.Buffer { return b.buf }

// Size returns the allocated size in bytes.
func (b *Buffer) Size() uint64 { return b.size }

// Usage returns the usage flags the buffer was created with.
func (b *Buffer) Usage() gputypes.BufferUsage { return b.usage }

// Binding returns a bind group resource covering the whole buffer.
func (b *Buffer) Binding() gputypes.BufferBinding {
	return gputypes.BufferBinding{Buffer: b.buf.NativeHandle(), Offset: 0, Size: b.size}
}

// Destroy frees the buffer. Safe to call twice.
func (b *Buffer) Destroy() {
	if b.buf == nil {
		return
	}
	if b.ctx.device != nil {
		b.ctx.device.DestroyBuffer(b.buf)
	}
	b.buf = nil
}

func alignUp(n, align uint64) uint64 {
	return (n + align - 1) / align * align
}
