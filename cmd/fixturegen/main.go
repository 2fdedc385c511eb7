// Command fixturegen writes the quadrant test fixture to disk, reads it
// back and validates it. With -gpu it also opens a GPU context for the
// host and shares it with gg's accelerator.
//
//	fixturegen -alpha 128 -output half.png -dir ./out
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	skiasharp "github.com/Odirb/SkiaSharp"
	"github.com/Odirb/SkiaSharp/glcontext"
	"github.com/Odirb/SkiaSharp/skiatest"

	_ "github.com/gogpu/gg/gpu" // register the GPU accelerator
)

func main() {
	var (
		alpha   = flag.Uint("alpha", uint(skiatest.Opaque), "fixture alpha, 0-255")
		output  = flag.String("output", skiatest.DefaultFilename, "output file name")
		dir     = flag.String("dir", "", "output directory (default from config)")
		format  = flag.String("format", "", "image format: png, jpeg, bmp, tiff (default by extension)")
		config  = flag.String("config", "", "TOML config file")
		gpu     = flag.Bool("gpu", false, "open a GPU context and share it with gg")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	skiasharp.SetLogger(log)

	if *alpha > 255 {
		log.Error("alpha out of range", "alpha", *alpha)
		os.Exit(2)
	}

	if err := run(log, options{
		alpha:  uint8(*alpha),
		output: *output,
		dir:    *dir,
		format: *format,
		config: *config,
		gpu:    *gpu,
	}); err != nil {
		log.Error("fixturegen failed", "err", err)
		os.Exit(1)
	}
}

type options struct {
	alpha  uint8
	output string
	dir    string
	format string
	config string
	gpu    bool
}

func run(log *slog.Logger, o options) error {
	cfg := skiatest.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = skiatest.LoadConfig(o.config); err != nil {
			return err
		}
	}

	saveOpts := []skiatest.SaveOption{skiatest.WithConfig(cfg)}
	if o.dir != "" {
		saveOpts = append(saveOpts, skiatest.WithDirectory(o.dir))
	}
	if o.format != "" {
		f, err := skiatest.ParseFormat(o.format)
		if err != nil {
			return err
		}
		saveOpts = append(saveOpts, skiatest.WithFormat(f))
	}

	if o.gpu {
		if ctx := openGPU(log); ctx != nil {
			defer func() { _ = ctx.Close() }()
		}
	}

	bmp := skiatest.CreateTestBitmap(o.alpha)
	path, err := skiatest.SaveBitmap(bmp, o.output, saveOpts...)
	if err != nil {
		return err
	}
	log.Info("fixture written", "path", path, "alpha", o.alpha)

	saved, err := skiatest.LoadBitmap(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path was just written by SaveBitmap
	if err != nil {
		return err
	}
	if f, err := skiatest.DetectFormat(data); err == nil && f == skiatest.JPEG {
		log.Info("JPEG is lossy, skipping validation", "path", path)
		return nil
	}

	check := &logT{log: log}
	if !skiatest.ValidateTestPixmap(check, saved, o.alpha, skiatest.WithTolerance(cfg.Tolerance)) {
		return fmt.Errorf("%s: %d sample checks failed", path, check.failures)
	}
	log.Info("fixture validated", "path", path)
	return nil
}

// openGPU opens a GPU context and hands it to gg. A host without a GPU
// is not an error: it logs the skip and returns nil.
func openGPU(log *slog.Logger) *glcontext.Context {
	ctx, err := glcontext.Create()
	if err != nil {
		log.Warn("GPU context unavailable", "err", err)
		return nil
	}
	if err := ctx.Accelerate(); err != nil {
		log.Warn("GPU accelerator rejected device", "err", err)
	}
	log.Info("GPU context ready",
		"platform", ctx.Platform(), "backend", ctx.Backend(), "adapter", ctx.AdapterName())
	return ctx
}

// logT reports validation failures to the logger.
type logT struct {
	log      *slog.Logger
	failures int
}

func (t *logT) Errorf(format string, args ...any) {
	t.failures++
	t.log.Error(fmt.Sprintf(format, args...))
}
