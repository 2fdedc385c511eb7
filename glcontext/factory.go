package glcontext

import (
	"errors"
	"fmt"

	skiasharp "github.com/Odirb/SkiaSharp"
)

// Opener constructs a context for a platform. Open is the default.
type Opener func(Platform) (*Context, error)

// Option configures a Factory.
type Option func(*Factory)

// WithPlatform overrides the detected host platform.
func WithPlatform(p Platform) Option {
	return func(f *Factory) {
		f.platform = p
	}
}

// WithOpener replaces the constructor used by Create.
// A nil opener keeps the default.
func WithOpener(open Opener) Option {
	return func(f *Factory) {
		if open != nil {
			f.open = open
		}
	}
}

// Factory creates GPU contexts for one platform and reports every
// failure as a skip.
type Factory struct {
	platform Platform
	open     Opener
}

// NewFactory returns a factory for the host platform.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		platform: Detect(),
		open:     Open,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Platform returns the platform the factory builds contexts for.
func (f *Factory) Platform() Platform {
	return f.platform
}

// Create builds a context. Any failure, including a panic inside the
// opener, is returned as a *SkipError wrapping the cause. The cause is
// not inspected.
func (f *Factory) Create() (ctx *Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			ctx, err = nil, f.skip(fmt.Errorf("panic: %v", r))
		}
	}()

	ctx, err = f.open(f.platform)
	if err == nil && ctx == nil {
		err = errors.New("opener returned no context")
	}
	if err != nil {
		if ctx != nil {
			_ = ctx.Close()
		}
		return nil, f.skip(err)
	}
	return ctx, nil
}

func (f *Factory) skip(cause error) error {
	err := &SkipError{Err: cause}
	skiasharp.Logger().Warn("glcontext: skipping GPU test",
		"platform", f.platform, "err", cause)
	return err
}

// Create builds a context for the host platform with the default
// factory. See Factory.Create.
func Create() (*Context, error) {
	return NewFactory().Create()
}
