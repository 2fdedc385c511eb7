// Package skiasharp is the root of the SkiaSharp test-support kit.
//
// # Overview
//
// The kit drives the gg 2D graphics engine (github.com/gogpu/gg) and the
// wgpu HAL from tests. It does not render anything on its own: it builds
// a known bitmap, checks pixels, writes images for manual inspection and
// opens a native GPU context when the host has one.
//
// # Packages
//
//   - skiatest: quadrant fixture, pixel assertions, bitmap persistence
//   - glcontext: platform GPU context factory with skip semantics
//
// # Quick Start
//
//	func TestSomething(t *testing.T) {
//	    bmp := skiatest.CreateTestBitmap(skiatest.Opaque)
//	    skiatest.ValidateTestBitmap(t, bmp, skiatest.Opaque)
//
//	    if _, err := skiatest.SaveBitmap(bmp, "something.png"); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
//	func TestOnGPU(t *testing.T) {
//	    ctx := glcontext.CreateGlContext(t) // skips when no GPU is available
//	    _ = ctx
//	}
//
// # Logging
//
// Nothing is logged by default. Call [SetLogger] to route the kit's and
// gg's diagnostics to a [log/slog] logger.
package skiasharp

// Version is the current version of the kit.
const Version = "0.1.0"
