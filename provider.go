package gltut

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

var _ gpucontext.DeviceProvider = (*Renderer)(nil)

// Device returns the negotiated hal.Device, or nil once the renderer is
// destroyed. The renderer keeps ownership; callers must not destroy it.
func (r *Renderer) Device() gpucontext.Device {
	d, _ := r.halObjects()
	if d == nil {
		return nil
	}
	return d
}

// Queue returns the device's hal.Queue, or nil once the renderer is
// destroyed.
func (r *Renderer) Queue() gpucontext.Queue {
	_, q := r.halObjects()
	if q == nil {
		return nil
	}
	return q
}

// Adapter returns the hal.Adapter the device was opened on, or nil once
// the renderer is destroyed.
func (r *Renderer) Adapter() gpucontext.Adapter {
	if r.destroyed || r.device == nil {
		return nil
	}
	a := r.device.Adapter()
	if a == nil {
		return nil
	}
	return a
}

// AdapterInfo describes the selected adapter for gpucontext consumers.
func (r *Renderer) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: r.Info().Name}
}

// SurfaceFormat returns the surface's configured texture format.
func (r *Renderer) SurfaceFormat() gputypes.TextureFormat {
	return r.Format()
}

// HalDevice returns the underlying hal.Device for code that records its
// own GPU work on the shared device.
func (r *Renderer) HalDevice() any {
	d, _ := r.halObjects()
	if d == nil {
		return nil
	}
	return d
}

// HalQueue returns the underlying hal.Queue.
func (r *Renderer) HalQueue() any {
	_, q := r.halObjects()
	if q == nil {
		return nil
	}
	return q
}

func (r *Renderer) halObjects() (hal.Device, hal.Queue) {
	if r.destroyed || r.device == nil {
		return nil, nil
	}
	return r.device.HAL()
}
