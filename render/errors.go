package render

import (
	"errors"

	"github.com/gogpu/g3d/gpu"
	"github.com/gogpu/wgpu/hal"
)

var (
	// ErrInvalidObject is returned by PushObject for an object without a
	// mesh, material, material shader or instance buffer.
	ErrInvalidObject = errors.New("render: render object incomplete")

	// ErrRendererClosed is returned by operations on a closed Renderer.
	ErrRendererClosed = errors.New("render: renderer closed")
)

// SurfaceErrorKind classifies a per-frame error returned by Render.
type SurfaceErrorKind int

const (
	// SurfaceOK means no error.
	SurfaceOK SurfaceErrorKind = iota
	// SurfaceLost means the surface must be reconfigured. Recoverable.
	SurfaceLost
	// SurfaceOutdated means the surface no longer matches the window.
	// Recoverable.
	SurfaceOutdated
	// SurfaceOutOfMemory is fatal.
	SurfaceOutOfMemory
	// SurfaceTimeout means the frame was skipped. Log and continue.
	SurfaceTimeout
	// SurfaceOther is any other error. Log and continue.
	SurfaceOther
)

// String returns a human-readable kind name.
func (k SurfaceErrorKind) String() string {
	switch k {
	case SurfaceOK:
		return "ok"
	case SurfaceLost:
		return "lost"
	case SurfaceOutdated:
		return "outdated"
	case SurfaceOutOfMemory:
		return "out of memory"
	case SurfaceTimeout:
		return "timeout"
	default:
		return "other"
	}
}

// Recoverable reports whether reconfiguring the surface and rendering the
// next frame is the right response.
func (k SurfaceErrorKind) Recoverable() bool {
	return k == SurfaceLost || k == SurfaceOutdated
}

// Fatal reports whether the application should stop.
func (k SurfaceErrorKind) Fatal() bool { return k == SurfaceOutOfMemory }

// ClassifySurfaceError maps an error returned by Render to its kind.
func ClassifySurfaceError(err error) SurfaceErrorKind {
	switch {
	case err == nil:
		return SurfaceOK
	case errors.Is(err, hal.ErrSurfaceLost):
		return SurfaceLost
	case errors.Is(err, hal.ErrSurfaceOutdated):
		return SurfaceOutdated
	case errors.Is(err, hal.ErrDeviceOutOfMemory):
		return SurfaceOutOfMemory
	case errors.Is(err, hal.ErrTimeout), errors.Is(err, gpu.ErrSubmitTimeout):
		return SurfaceTimeout
	default:
		return SurfaceOther
	}
}
