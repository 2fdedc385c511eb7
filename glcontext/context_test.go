package glcontext

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
)

func TestContextCloseIdempotent(t *testing.T) {
	c := &Context{}

	assert.False(t, c.closed)
	assert.NoError(t, c.Close())
	assert.True(t, c.closed)
	assert.NoError(t, c.Close())
}

func TestContextDeviceProvider(t *testing.T) {
	c := &Context{
		platform: PlatformLinux,
		backend:  gputypes.BackendGL,
		info:     gpucontext.AdapterInfo{Name: "llvmpipe", Type: gpucontext.AdapterTypeSoftware},
	}

	assert.Equal(t, PlatformLinux, c.Platform())
	assert.Equal(t, gputypes.BackendGL, c.Backend())
	assert.Equal(t, "llvmpipe", c.AdapterName())
	assert.Equal(t, gpucontext.AdapterTypeSoftware, c.AdapterInfo().Type)
	assert.Equal(t, gputypes.TextureFormatRGBA8Unorm, c.SurfaceFormat())

	// Nothing is open, so the handles are untyped nils.
	assert.Nil(t, c.Device())
	assert.Nil(t, c.Queue())
	assert.Nil(t, c.Adapter())
	assert.Nil(t, c.HalDevice())
	assert.Nil(t, c.HalQueue())
}

func TestContextAccelerateWithoutAccelerator(t *testing.T) {
	// No accelerator is registered in this test binary.
	assert.NoError(t, (&Context{}).Accelerate())
}

func TestAdapterInfo(t *testing.T) {
	tests := []struct {
		deviceType gputypes.DeviceType
		want       gpucontext.AdapterType
	}{
		{gputypes.DeviceTypeDiscreteGPU, gpucontext.AdapterTypeDiscrete},
		{gputypes.DeviceTypeIntegratedGPU, gpucontext.AdapterTypeIntegrated},
		{gputypes.DeviceTypeCPU, gpucontext.AdapterTypeSoftware},
		{gputypes.DeviceTypeVirtualGPU, gpucontext.AdapterTypeUnknown},
		{gputypes.DeviceTypeOther, gpucontext.AdapterTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := adapterInfo(gputypes.AdapterInfo{Name: "gpu0", DeviceType: tt.deviceType})
			assert.Equal(t, gpucontext.AdapterInfo{Name: "gpu0", Type: tt.want}, got)
		})
	}
}

func TestPickAdapter(t *testing.T) {
	other := gputypes.DeviceTypeOther
	cpu := gputypes.DeviceTypeCPU

	tests := []struct {
		name  string
		types []gputypes.DeviceType
		want  int
	}{
		{"single", []gputypes.DeviceType{other}, 0},
		{"discrete first", []gputypes.DeviceType{gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU}, 0},
		{"hardware after software", []gputypes.DeviceType{cpu, other, gputypes.DeviceTypeIntegratedGPU}, 2},
		{"no hardware", []gputypes.DeviceType{cpu, other}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickAdapter(tt.types))
		})
	}
}
