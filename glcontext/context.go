package glcontext

import (
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Context is an open native GPU context: a HAL instance with one device
// and its queue. It is owned by the test that created it and must be
// closed when the test ends.
//
// Context implements gpucontext.DeviceProvider, so it can be handed to
// gg's GPU accelerator with Accelerate.
type Context struct {
	platform Platform
	backend  gputypes.Backend
	info     gpucontext.AdapterInfo

	instance hal.Instance
	adapter  hal.Adapter
	device   hal.Device
	queue    hal.Queue

	closed bool
}

var (
	_ io.Closer                 = (*Context)(nil)
	_ gpucontext.DeviceProvider = (*Context)(nil)
)

// Platform returns the platform the context was opened for.
func (c *Context) Platform() Platform { return c.platform }

// Backend returns the HAL backend in use.
func (c *Context) Backend() gputypes.Backend { return c.backend }

// AdapterName returns the name of the selected GPU adapter.
func (c *Context) AdapterName() string { return c.info.Name }

// HalDevice returns the underlying hal.Device.
func (c *Context) HalDevice() any { return c.device }

// HalQueue returns the underlying hal.Queue.
func (c *Context) HalQueue() any { return c.queue }

// Device returns the HAL device, nil once the context is closed.
func (c *Context) Device() gpucontext.Device {
	if c.device == nil {
		return nil
	}
	return c.device
}

// Queue returns the device queue, nil once the context is closed.
func (c *Context) Queue() gpucontext.Queue {
	if c.queue == nil {
		return nil
	}
	return c.queue
}

// Adapter returns the selected HAL adapter.
func (c *Context) Adapter() gpucontext.Adapter {
	if c.adapter == nil {
		return nil
	}
	return c.adapter
}

// AdapterInfo returns the name and kind of the selected adapter.
func (c *Context) AdapterInfo() gpucontext.AdapterInfo { return c.info }

// SurfaceFormat returns the pixel format of offscreen targets. It matches
// the RGBA8 layout of gg pixmaps.
func (c *Context) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Accelerate hands the device to the GPU accelerator registered with gg
// (see github.com/gogpu/gg/gpu), so subsequent drawing shares it. Without
// a registered accelerator this is a no-op.
func (c *Context) Accelerate() error {
	return gg.SetAcceleratorDeviceProvider(c)
}

// Close releases the device and the instance. Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	// Release in reverse order of creation. The queue goes with the device
	// and the adapter with the instance.
	if c.device != nil {
		c.device.Destroy()
		c.device = nil
	}
	c.queue = nil
	c.adapter = nil
	if c.instance != nil {
		c.instance.Destroy()
		c.instance = nil
	}
	return nil
}

// adapterInfo converts HAL adapter metadata to the form gg uses for
// render mode selection.
func adapterInfo(info gputypes.AdapterInfo) gpucontext.AdapterInfo {
	t := gpucontext.AdapterTypeUnknown
	switch info.DeviceType {
	case gputypes.DeviceTypeDiscreteGPU:
		t = gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		t = gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		t = gpucontext.AdapterTypeSoftware
	}
	return gpucontext.AdapterInfo{Name: info.Name, Type: t}
}
