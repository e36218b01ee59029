package gpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Option configures a Context during creation.
//
// Example:
//
//	ctx, err := gpu.New(window,
//	    gpu.WithPresentMode(hal.PresentModeFifo),
//	    gpu.WithShaderCacheSize(32),
//	)
type Option func(*options)

type options struct {
	backend     hal.Backend
	backendType gputypes.Backend
	presentMode hal.PresentMode
	cacheSize   int
}

func defaultOptions() options {
	return options{
		backendType: gputypes.BackendVulkan,
		presentMode: hal.PresentModeMailbox,
		cacheSize:   16,
	}
}

// WithBackend uses b directly instead of looking up a registered backend.
// Tests pass the noop backend here.
func WithBackend(b hal.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithBackendType selects which registered backend New looks up.
// Default: gputypes.BackendVulkan.
func WithBackendType(t gputypes.Backend) Option {
	return func(o *options) {
		o.backendType = t
	}
}

// WithPresentMode sets the preferred present mode. If the surface does not
// support it, Fifo is used.
// Default: hal.PresentModeMailbox.
func WithPresentMode(m hal.PresentMode) Option {
	return func(o *options) {
		o.presentMode = m
	}
}

// WithShaderCacheSize sets the per-shard capacity of the SPIR-V cache.
// Default: 16.
func WithShaderCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}
