//go:build darwin

package glcontext

import (
	// Register the Metal HAL backend via init().
	_ "github.com/gogpu/wgpu/hal/metal"
)
