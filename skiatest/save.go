package skiatest

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	skiasharp "github.com/Odirb/SkiaSharp"
)

// DefaultFilename is used by SaveBitmap when no filename is given.
const DefaultFilename = "output.png"

// ErrEmptyBitmap is returned when there is nothing to save.
var ErrEmptyBitmap = errors.New("skiatest: bitmap is nil or empty")

// SaveOption configures SaveBitmap.
type SaveOption func(*saveOptions)

type saveOptions struct {
	cfg    Config
	format Format // FormatUnknown: derive from the file name
}

// WithConfig replaces the configuration used for the save.
func WithConfig(cfg Config) SaveOption {
	return func(o *saveOptions) {
		o.cfg = cfg
	}
}

// WithDirectory writes into dir instead of the configured images directory.
func WithDirectory(dir string) SaveOption {
	return func(o *saveOptions) {
		o.cfg.ImagesDir = dir
	}
}

// WithFormat forces the encoding regardless of the file extension.
func WithFormat(f Format) SaveOption {
	return func(o *saveOptions) {
		o.format = f
	}
}

// WithJPEGQuality sets the JPEG encoder quality (1-100).
func WithJPEGQuality(q int) SaveOption {
	return func(o *saveOptions) {
		o.cfg.JPEGQuality = q
	}
}

// SaveBitmap re-encodes bmp and writes it to filename under the images
// directory, returning the path written. An empty filename means
// [DefaultFilename]. The format follows the extension; a name without one
// gets the configured default format and its extension.
//
// The source is composited onto a freshly cleared bitmap first, so the
// file holds exactly what a reader of bmp would see.
func SaveBitmap(bmp image.Image, filename string, opts ...SaveOption) (string, error) {
	o := saveOptions{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return "", err
	}

	if filename == "" {
		filename = DefaultFilename
	}
	format, filename, err := resolveFormat(filename, o.format, o.cfg.Format)
	if err != nil {
		return "", err
	}
	path := filepath.Join(o.cfg.ImagesDir, filename)

	data, err := encodeBitmap(bmp, format, o.cfg.JPEGQuality)
	if err != nil {
		return "", fmt.Errorf("skiatest: save %s: %w", path, err)
	}
	if err := writeFile(path, data); err != nil {
		return "", fmt.Errorf("skiatest: save %s: %w", path, err)
	}

	skiasharp.Logger().Debug("skiatest: bitmap saved", "path", path, "format", format, "bytes", len(data))
	return path, nil
}

func resolveFormat(filename string, forced, fallback Format) (Format, string, error) {
	if forced != FormatUnknown {
		if !forced.Valid() {
			return FormatUnknown, "", fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(forced))
		}
		return forced, filename, nil
	}
	if filepath.Ext(filename) == "" {
		return fallback, filename + fallback.Extension(), nil
	}
	f, err := FormatFromFilename(filename)
	if err != nil {
		return FormatUnknown, "", err
	}
	return f, filename, nil
}

// encodeBitmap draws src onto a new transparent canvas of the same size,
// flushes it and encodes the result.
func encodeBitmap(src image.Image, format Format, jpegQuality int) ([]byte, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmptyBitmap
	}
	b := src.Bounds()

	dst := gg.NewPixmap(b.Dx(), b.Dy())
	dc := gg.NewContext(b.Dx(), b.Dy(), gg.WithPixmap(dst))
	defer func() {
		_ = dc.Close()
	}()

	dc.ClearWithColor(gg.Transparent)
	dc.DrawImage(gg.ImageBufFromImage(src), 0, 0)
	// A failed flush leaves the CPU pixels in place, which is what gets
	// encoded.
	if err := dc.FlushGPU(); err != nil {
		skiasharp.Logger().Warn("skiatest: GPU flush failed, encoding CPU pixels", "err", err)
	}

	var buf bytes.Buffer
	if err := encode(&buf, dc, format, jpegQuality); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

func encode(w io.Writer, dc *gg.Context, format Format, jpegQuality int) error {
	switch format {
	case PNG:
		return dc.EncodePNG(w)
	case JPEG:
		return dc.EncodeJPEG(w, jpegQuality)
	case BMP:
		return bmp.Encode(w, dc.Image())
	case TIFF:
		return tiff.Encode(w, dc.Image(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func writeFile(path string, data []byte) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	_, err = f.Write(data)
	return err
}
