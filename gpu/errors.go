package gpu

import (
	"errors"
	"fmt"
)

// Initialization errors returned by New, always wrapped in *InitError.
var (
	// ErrAdapterUnavailable is returned when no backend or adapter can
	// present to the window's surface.
	ErrAdapterUnavailable = errors.New("gpu: no compatible adapter")

	// ErrDeviceRequestFailed is returned when the selected adapter refuses
	// to open a logical device.
	ErrDeviceRequestFailed = errors.New("gpu: device request failed")

	// ErrSurfaceCreationFailed is returned when the window cannot produce a
	// presentable surface or the surface rejects its configuration.
	ErrSurfaceCreationFailed = errors.New("gpu: surface creation failed")
)

// Per-frame errors.
var (
	// ErrSurfaceNotConfigured is returned by AcquireFrame while the surface
	// has zero area.
	ErrSurfaceNotConfigured = errors.New("gpu: surface not configured")

	// ErrFrameReleased is returned when a frame is presented twice or
	// presented after Discard.
	ErrFrameReleased = errors.New("gpu: frame already released")

	// ErrSubmitTimeout is returned by Submit when the device wait after a
	// submission times out.
	ErrSubmitTimeout = errors.New("gpu: submit timed out")

	// ErrContextDestroyed is returned by operations on a destroyed Context.
	ErrContextDestroyed = errors.New("gpu: context destroyed")

	// ErrEmptyBuffer is returned when a buffer is requested with no data
	// and no size.
	ErrEmptyBuffer = errors.New("gpu: empty buffer")

	// ErrBufferOverflow is returned by Buffer.Write when the data does not
	// fit between the offset and the end of the buffer.
	ErrBufferOverflow = errors.New("gpu: write past end of buffer")

	// ErrUnalignedWrite is returned by Buffer.Write for an offset that is
	// not a multiple of four.
	ErrUnalignedWrite = errors.New("gpu: unaligned buffer write")

	// ErrPixelData is returned when a texture is created with a zero
	// dimension or fewer than width*height*4 bytes of pixels.
	ErrPixelData = errors.New("gpu: invalid pixel data")

	// ErrBufferDestroyed is returned by Buffer.Write after Destroy.
	ErrBufferDestroyed = errors.New("gpu: buffer destroyed")
)

// InitError describes a failed Context initialization step.
type InitError struct {
	// Kind is one of ErrAdapterUnavailable, ErrDeviceRequestFailed or
	// ErrSurfaceCreationFailed.
	Kind error
	// Err is the underlying backend error, if any.
	Err error
}

func (e *InitError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

// Is reports whether target matches the error kind.
func (e *InitError) Is(target error) bool { return target == e.Kind }

func (e *InitError) Unwrap() error { return e.Err }

func initErr(kind, err error) error { return &InitError{Kind: kind, Err: err} }

// AssetKind classifies an AssetLoadError.
type AssetKind int

const (
	// AssetIO means the asset file could not be read.
	AssetIO AssetKind = iota
	// AssetDecode means the file was read but its contents are not a
	// supported image.
	AssetDecode
	// AssetShaderCompile means the shader source failed to compile.
	AssetShaderCompile
)

// String returns a human-readable kind name.
func (k AssetKind) String() string {
	switch k {
	case AssetIO:
		return "io"
	case AssetDecode:
		return "decode"
	case AssetShaderCompile:
		return "shader compile"
	default:
		return fmt.Sprintf("AssetKind(%d)", int(k))
	}
}

// AssetLoadError reports a failure to load a texture or shader from disk.
type AssetLoadError struct {
	Kind AssetKind
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("gpu: load %s: %s error: %v", e.Path, e.Kind, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// IsAssetKind reports whether err is an *AssetLoadError of the given kind.
func IsAssetKind(err error, kind AssetKind) bool {
	var ae *AssetLoadError
	return errors.As(err, &ae) && ae.Kind == kind
}
