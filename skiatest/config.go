package skiatest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables read by [DefaultConfig] and [LoadConfig]. They
// override values from a config file.
const (
	EnvImagesDir = "SKIASHARP_IMAGES_DIR"
	EnvFormat    = "SKIASHARP_IMAGE_FORMAT"
	EnvTolerance = "SKIASHARP_TOLERANCE"
)

// DefaultTolerance is the per-channel slack allowed by the comparator.
// It absorbs one step of float to 8-bit rounding in the engine.
const DefaultTolerance = 1

// DefaultJPEGQuality is used when saving JPEG files.
const DefaultJPEGQuality = 90

// ErrInvalidConfig is returned for config values outside their range.
var ErrInvalidConfig = errors.New("skiatest: invalid config")

// Config is the base test configuration shared by the helpers.
type Config struct {
	// ImagesDir is where SaveBitmap writes files.
	ImagesDir string `toml:"images_dir"`

	// Format is used for file names without a known extension.
	Format Format `toml:"format"`

	// Tolerance is the per-channel slack used by the validators.
	Tolerance int `toml:"tolerance"`

	// JPEGQuality is the JPEG encoder quality, 1 to 100.
	JPEGQuality int `toml:"jpeg_quality"`
}

// DefaultConfig returns the built-in configuration with environment
// overrides applied. Invalid environment values are ignored.
func DefaultConfig() Config {
	cfg := baseConfig()
	_ = cfg.applyEnv()
	return cfg
}

func baseConfig() Config {
	return Config{
		ImagesDir:   filepath.Join(os.TempDir(), "skiasharp", "images"),
		Format:      PNG,
		Tolerance:   DefaultTolerance,
		JPEGQuality: DefaultJPEGQuality,
	}
}

// LoadConfig reads a TOML config file, fills unset fields from the
// defaults and applies environment overrides. A relative images_dir is
// resolved against the directory holding the file.
//
//	images_dir = "out/images"
//	format = "png"
//	tolerance = 1
//	jpeg_quality = 90
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("skiatest: read config: %w", err)
	}

	cfg := baseConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("skiatest: parse config %s: %w", path, err)
	}
	if cfg.ImagesDir != "" && !filepath.IsAbs(cfg.ImagesDir) {
		cfg.ImagesDir = filepath.Join(filepath.Dir(path), cfg.ImagesDir)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if dir := os.Getenv(EnvImagesDir); dir != "" {
		c.ImagesDir = dir
	}
	if name := os.Getenv(EnvFormat); name != "" {
		f, err := ParseFormat(name)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvFormat, err)
		}
		c.Format = f
	}
	if v := os.Getenv(EnvTolerance); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvTolerance, v)
		}
		c.Tolerance = n
	}
	return nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.ImagesDir == "":
		return fmt.Errorf("%w: images_dir is empty", ErrInvalidConfig)
	case !c.Format.Valid():
		return fmt.Errorf("%w: format %d", ErrInvalidConfig, c.Format)
	case c.Tolerance < 0 || c.Tolerance > 255:
		return fmt.Errorf("%w: tolerance %d not in [0, 255]", ErrInvalidConfig, c.Tolerance)
	case c.JPEGQuality < 1 || c.JPEGQuality > 100:
		return fmt.Errorf("%w: jpeg_quality %d not in [1, 100]", ErrInvalidConfig, c.JPEGQuality)
	}
	return nil
}

// PathToImages returns the images directory of the default configuration.
func PathToImages() string {
	return DefaultConfig().ImagesDir
}
