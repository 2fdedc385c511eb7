package glcontext

import "errors"

// skipPrefix starts every skip message.
const skipPrefix = "Unable to create GL context: "

// SkipError means the environment cannot provide a GPU context. Tests
// receiving it should skip, not fail.
type SkipError struct {
	Err error
}

func (e *SkipError) Error() string {
	if e.Err == nil {
		return skipPrefix + "unknown error"
	}
	return skipPrefix + e.Err.Error()
}

func (e *SkipError) Unwrap() error {
	return e.Err
}

// IsSkip reports whether any error in err's chain is a *SkipError.
func IsSkip(err error) bool {
	var skip *SkipError
	return errors.As(err, &skip)
}

// TB is the subset of testing.TB used by CreateGlContext.
type TB interface {
	Helper()
	Skip(args ...any)
	Cleanup(func())
}

// CreateGlContext returns a GPU context closed when the test ends, or
// skips the test when none can be created.
//
//	func TestDraw(t *testing.T) {
//		ctx := glcontext.CreateGlContext(t)
//		...
//	}
//
// Skip stops the test goroutine under the testing package. A TB whose
// Skip returns gets nil.
func CreateGlContext(t TB, opts ...Option) *Context {
	t.Helper()
	ctx, err := NewFactory(opts...).Create()
	if err != nil {
		t.Skip(err.Error())
		return nil
	}
	t.Cleanup(func() {
		_ = ctx.Close()
	})
	return ctx
}
