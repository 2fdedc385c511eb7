package skiatest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// Format is an image encoding supported by SaveBitmap and LoadBitmap.
type Format uint8

const (
	// FormatUnknown is the zero Format.
	FormatUnknown Format = iota

	// PNG is lossless with alpha. It is the default.
	PNG

	// JPEG is lossy and drops alpha.
	JPEG

	// BMP is lossless; non-opaque images are written as 32-bit.
	BMP

	// TIFF is lossless with alpha, deflate compressed.
	TIFF
)

// ErrUnknownFormat is returned for names, extensions or byte streams that
// do not map to a supported Format.
var ErrUnknownFormat = errors.New("skiatest: unknown image format")

var formatNames = [...]string{
	FormatUnknown: "unknown",
	PNG:           "png",
	JPEG:          "jpeg",
	BMP:           "bmp",
	TIFF:          "tiff",
}

// String returns the lower-case format name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Valid reports whether f is a concrete format.
func (f Format) Valid() bool {
	return f >= PNG && f <= TIFF
}

// Extension returns the canonical file extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case BMP:
		return ".bmp"
	case TIFF:
		return ".tiff"
	default:
		return ""
	}
}

// ParseFormat parses a format name or extension, case-insensitively.
// "jpg" and "tif" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromFilename returns the format implied by the file extension.
func FormatFromFilename(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return FormatUnknown, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, name)
	}
	return ParseFormat(ext)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// DetectFormat sniffs encoded image bytes.
func DetectFormat(data []byte) (Format, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return FormatUnknown, fmt.Errorf("skiatest: detect format: %w", err)
	}
	if kind == filetype.Unknown {
		return FormatUnknown, ErrUnknownFormat
	}
	return ParseFormat(kind.Extension)
}
