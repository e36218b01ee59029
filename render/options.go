package render

import "github.com/gogpu/g3d/gpu"

// Option configures a Renderer.
type Option func(*options)

type options struct {
	gpuOpts []gpu.Option
	camera  *Camera
}

func defaultOptions() options {
	return options{}
}

// WithGPUOptions passes options through to gpu.New.
func WithGPUOptions(opts ...gpu.Option) Option {
	return func(o *options) {
		o.gpuOpts = append(o.gpuOpts, opts...)
	}
}

// WithCamera replaces the default camera. Its aspect is kept until the
// first Resize.
func WithCamera(c Camera) Option {
	return func(o *options) {
		o.camera = &c
	}
}
