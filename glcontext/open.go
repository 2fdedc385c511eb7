package glcontext

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	skiasharp "github.com/Odirb/SkiaSharp"
)

var (
	// ErrUnsupportedPlatform is returned for platforms without a native
	// context type.
	ErrUnsupportedPlatform = errors.New("glcontext: platform not supported")

	// ErrBackendUnavailable is returned when the platform's HAL backend is
	// not linked into the binary.
	ErrBackendUnavailable = errors.New("glcontext: GPU backend not available")

	// ErrNoAdapter is returned when the backend reports no adapters.
	ErrNoAdapter = errors.New("glcontext: no GPU adapters found")
)

// Open creates a native GPU context for platform p: it instantiates the
// platform's HAL backend, picks an adapter, opens a device and checks it
// can build shaders. Everything acquired is released again when a later
// step fails.
//
// Open returns the raw failure. Tests should use Create or
// CreateGlContext, which turn failures into skips.
func Open(p Platform) (*Context, error) {
	backendID, ok := p.Backend()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p)
	}
	backend, ok := hal.GetBackend(backendID)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, backendID)
	}

	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("glcontext: create %v instance: %w", backendID, err)
	}
	c := &Context{platform: p, backend: backendID, instance: instance}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		_ = c.Close()
		return nil, fmt.Errorf("%w: %v", ErrNoAdapter, backendID)
	}
	types := make([]gputypes.DeviceType, len(adapters))
	for i := range adapters {
		types[i] = adapters[i].Info.DeviceType
	}
	selected := &adapters[pickAdapter(types)]

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("glcontext: open device on %q: %w", selected.Info.Name, err)
	}
	c.adapter = selected.Adapter
	c.device = openDev.Device
	c.queue = openDev.Queue
	c.info = adapterInfo(selected.Info)

	if err := c.probe(); err != nil {
		_ = c.Close()
		return nil, err
	}

	skiasharp.Logger().Info("glcontext: GPU context opened",
		"platform", p, "backend", backendID, "adapter", c.info.Name, "type", c.info.Type)
	return c, nil
}

// pickAdapter returns the index of the first hardware adapter, falling
// back to the first adapter of any kind. types must not be empty.
func pickAdapter(types []gputypes.DeviceType) int {
	for i, t := range types {
		if t == gputypes.DeviceTypeDiscreteGPU || t == gputypes.DeviceTypeIntegratedGPU {
			return i
		}
	}
	return 0
}
