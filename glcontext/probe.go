package glcontext

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	skiasharp "github.com/Odirb/SkiaSharp"
)

// probeShaderWGSL is the smallest compute kernel that touches a storage
// buffer. A device that cannot build it cannot run gg's GPU pipelines.
const probeShaderWGSL = `@group(0) @binding(0) var<storage, read_write> data: array<u32>;

@compute @workgroup_size(1)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    data[id.x] = data[id.x] + 1u;
}
`

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// compileProbe compiles the probe kernel to SPIR-V words.
func compileProbe() ([]uint32, error) {
	spirvBytes, err := naga.Compile(probeShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("glcontext: compile probe shader: %w", err)
	}
	if len(spirvBytes) < 4 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("glcontext: probe shader: %d bytes is not SPIR-V", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("glcontext: probe shader: bad SPIR-V magic %#08x", words[0])
	}
	return words, nil
}

// probe checks that the shader toolchain works and that the device
// accepts a shader module. Driver or version mismatches surface here
// rather than in the middle of a test.
func (c *Context) probe() error {
	if _, err := compileProbe(); err != nil {
		return err
	}

	module, err := c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "glcontext-probe",
		Source: hal.ShaderSource{WGSL: probeShaderWGSL},
	})
	if err != nil {
		return fmt.Errorf("glcontext: create probe shader module: %w", err)
	}
	c.device.DestroyShaderModule(module)

	skiasharp.Logger().Debug("glcontext: probe passed", "backend", c.backend)
	return nil
}
