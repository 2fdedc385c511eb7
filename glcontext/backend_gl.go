//go:build linux || windows

package glcontext

import (
	// Register the OpenGL HAL backend (EGL on Linux, WGL on Windows) via init().
	_ "github.com/gogpu/wgpu/hal/gles"
)
