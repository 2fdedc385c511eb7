package glcontext

import (
	"fmt"
	"runtime"

	"github.com/gogpu/gputypes"
)

// Platform identifies a host platform that has a native GPU context type.
type Platform uint8

const (
	// PlatformUnsupported is any host without a known context type.
	PlatformUnsupported Platform = iota

	// PlatformLinux uses the GL HAL backend (EGL/GLX family).
	PlatformLinux

	// PlatformMacOS uses the Metal HAL backend.
	PlatformMacOS

	// PlatformWindows uses the GL HAL backend (WGL).
	PlatformWindows
)

// Detect returns the platform of the running process.
func Detect() Platform {
	return PlatformFromGOOS(runtime.GOOS)
}

// PlatformFromGOOS maps a GOOS value to a Platform.
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformMacOS
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnsupported
	}
}

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformUnsupported:
		return "unsupported"
	case PlatformLinux:
		return "linux"
	case PlatformMacOS:
		return "macos"
	case PlatformWindows:
		return "windows"
	default:
		return fmt.Sprintf("Platform(%d)", uint8(p))
	}
}

// Backend returns the HAL backend used for contexts on p.
// ok is false for PlatformUnsupported and unknown values.
func (p Platform) Backend() (backend gputypes.Backend, ok bool) {
	switch p {
	case PlatformLinux, PlatformWindows:
		return gputypes.BackendGL, true
	case PlatformMacOS:
		return gputypes.BackendMetal, true
	default:
		return backend, false
	}
}
