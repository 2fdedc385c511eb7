// Package glcontext opens a native GPU context for hardware-accelerated
// test paths.
//
// The host platform selects the backend: GL on Linux and Windows, Metal
// on macOS (the HAL has no CGL backend). Any other platform is
// unsupported. Whether a GPU is usable is a property of the machine
// running the tests, so every failure to build a context is reported as a
// [SkipError] rather than as the underlying error:
//
//	func TestDrawOnGPU(t *testing.T) {
//	    ctx := glcontext.CreateGlContext(t) // t.Skip when there is no GPU
//	    if err := ctx.Accelerate(); err != nil {
//	        t.Fatal(err)
//	    }
//	    // draw with gg ...
//	}
//
// The backend packages are linked by build-tagged files.
package glcontext
