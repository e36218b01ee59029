// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/g3d/gpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle exposes a renderer's device to other gogpu libraries that
// draw into the same window. It is an alias for gpucontext.DeviceProvider.
//
// Providers returned by Renderer.DeviceProvider also implement
//
//	HalDevice() any // hal.Device
//	HalQueue() any  // hal.Queue
//
// so consumers can reach the HAL objects without importing this package.
type DeviceHandle = gpucontext.DeviceProvider

// DeviceProvider returns a DeviceHandle sharing r's device and queue. The
// handle does not own them: destroying it through Device().Destroy() is a
// no-op and the renderer stays usable.
func (r *Renderer) DeviceProvider() DeviceHandle {
	return &deviceProvider{ctx: r.ctx}
}

type deviceProvider struct {
	ctx *gpu.Context
}

func (p *deviceProvider) Device() gpucontext.Device { return sharedDevice{p.ctx.Device()} }

func (p *deviceProvider) Queue() gpucontext.Queue { return p.ctx.Queue() }

func (p *deviceProvider) Adapter() gpucontext.Adapter { return p.ctx.Adapter() }

func (p *deviceProvider) AdapterInfo() gpucontext.AdapterInfo {
	info := p.ctx.AdapterInfo()
	return gpucontext.AdapterInfo{Name: info.Name, Type: adapterType(info.DeviceType)}
}

func (p *deviceProvider) SurfaceFormat() gputypes.TextureFormat { return p.ctx.Config().Format }

func (p *deviceProvider) HalDevice() any { return p.ctx.Device() }

func (p *deviceProvider) HalQueue() any { return p.ctx.Queue() }

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

// sharedDevice is the value behind gpucontext.Device. Submit waits for the
// device to go idle, so there is nothing to poll, and Destroy is a no-op
// because the renderer owns the device.
type sharedDevice struct {
	hal.Device
}

func (sharedDevice) Poll(bool) {}

func (sharedDevice) Destroy() {}

var _ DeviceHandle = (*deviceProvider)(nil)
