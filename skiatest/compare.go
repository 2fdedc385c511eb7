package skiatest

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
)

// TestingT is the subset of *testing.T used by the validators.
type TestingT interface {
	Errorf(format string, args ...any)
}

type tHelper interface {
	Helper()
}

// CompareOption configures a validation.
type CompareOption func(*compareOptions)

type compareOptions struct {
	tolerance int
}

// WithTolerance sets the per-channel slack, overriding the configured
// default.
func WithTolerance(n int) CompareOption {
	return func(o *compareOptions) {
		o.tolerance = n
	}
}

func newCompareOptions(opts []CompareOption) compareOptions {
	o := compareOptions{tolerance: DefaultConfig().Tolerance}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ValidateTestBitmap checks that bmp is the fixture built by
// CreateTestBitmap(alpha): 40x40, with every quadrant sample in its marker
// color at the given alpha. Each failed check is reported through t; the
// return value tells whether all of them held.
func ValidateTestBitmap(t TestingT, bmp *gg.Pixmap, alpha uint8, opts ...CompareOption) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !assert.NotNil(t, bmp, "bitmap") {
		return false
	}
	// At returns the stored premultiplied bytes without converting them.
	return validate(t, bmp.Width(), bmp.Height(), bmp.At, alpha, newCompareOptions(opts))
}

// ValidateTestPixmap is ValidateTestBitmap for a read-only pixel view.
// Any image.Image works: a *gg.Pixmap, a decoded file, a sub-image.
func ValidateTestPixmap(t TestingT, pix image.Image, alpha uint8, opts ...CompareOption) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !assert.NotNil(t, pix, "pixmap") {
		return false
	}
	b := pix.Bounds()
	return validate(t, b.Dx(), b.Dy(), func(x, y int) color.Color {
		return pix.At(b.Min.X+x, b.Min.Y+y)
	}, alpha, newCompareOptions(opts))
}

func validate(t TestingT, width, height int, at func(x, y int) color.Color, alpha uint8, o compareOptions) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ok := assert.Equal(t, Size, width, "width")
	ok = assert.Equal(t, Size, height, "height") && ok
	if !ok {
		// Sample points are meaningless on a bitmap of the wrong size.
		return false
	}

	for _, q := range Quadrants() {
		want := ExpectedColor(q.Color, alpha)
		got := at(q.Sample.X, q.Sample.Y)
		if MatchColor(want, got, o.tolerance) {
			continue
		}
		ok = false
		assert.Equal(t, want, premultiplied(got),
			"%s pixel at (%d, %d), tolerance %d", q.Name, q.Sample.X, q.Sample.Y, o.tolerance)
	}
	return ok
}
