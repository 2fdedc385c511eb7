package skiatest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readNonEmpty(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data, "%s is empty", path)
	return data
}

func TestSaveBitmapDefaultFilename(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveBitmap(CreateTestBitmap(Opaque), "", WithDirectory(dir))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultFilename), path)

	f, err := DetectFormat(readNonEmpty(t, path))
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
}

func TestSaveBitmapRoundTrip(t *testing.T) {
	tests := []struct {
		filename string
		format   Format
	}{
		{"fixture.png", PNG},
		{"fixture.bmp", BMP},
		{"fixture.tiff", TIFF},
		{"fixture.TIF", TIFF},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			dir := t.TempDir()
			path, err := SaveBitmap(CreateTestBitmap(Opaque), tt.filename, WithDirectory(dir))
			require.NoError(t, err)

			f, err := DetectFormat(readNonEmpty(t, path))
			require.NoError(t, err)
			assert.Equal(t, tt.format, f)

			loaded, err := LoadBitmap(path)
			require.NoError(t, err)
			ValidateTestBitmap(t, loaded, Opaque)
			ValidateTestPixmap(t, loaded, Opaque)
		})
	}
}

func TestSaveBitmapJPEG(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveBitmap(CreateTestBitmap(Opaque), "fixture.jpg", WithDirectory(dir), WithJPEGQuality(75))
	require.NoError(t, err)

	f, err := DetectFormat(readNonEmpty(t, path))
	require.NoError(t, err)
	assert.Equal(t, JPEG, f)

	loaded, err := LoadBitmap(path)
	require.NoError(t, err)
	assert.Equal(t, Size, loaded.Width())
	assert.Equal(t, Size, loaded.Height())
}

func TestSaveBitmapNoExtension(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.ImagesDir = dir
	cfg.Format = BMP

	path, err := SaveBitmap(CreateTestBitmap(Opaque), "fixture", WithConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fixture.bmp"), path)

	f, err := DetectFormat(readNonEmpty(t, path))
	require.NoError(t, err)
	assert.Equal(t, BMP, f)
}

func TestSaveBitmapWithFormat(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveBitmap(CreateTestBitmap(Opaque), "fixture.img", WithDirectory(dir), WithFormat(TIFF))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fixture.img"), path)

	f, err := DetectFormat(readNonEmpty(t, path))
	require.NoError(t, err)
	assert.Equal(t, TIFF, f)
}

func TestSaveBitmapCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	path, err := SaveBitmap(CreateTestBitmap(Opaque), "nested/out.png", WithDirectory(dir))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "out.png"), path)
	readNonEmpty(t, path)
}

func TestSaveBitmapUsesImagesDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvImagesDir, dir)

	path, err := SaveBitmap(CreateTestBitmap(Opaque), "env.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "env.png"), path)
	assert.Equal(t, dir, PathToImages())
}

func TestSaveBitmapTranslucent(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveBitmap(CreateTestBitmap(128), "translucent.png", WithDirectory(dir))
	require.NoError(t, err)
	readNonEmpty(t, path)
}

func TestSaveBitmapErrors(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	tests := []struct {
		name     string
		filename string
		opts     []SaveOption
		wantErr  error
	}{
		{"unknown extension", "out.gif", []SaveOption{WithDirectory(t.TempDir())}, ErrUnknownFormat},
		{"invalid forced format", "out.png", []SaveOption{WithDirectory(t.TempDir()), WithFormat(Format(42))}, ErrUnknownFormat},
		{"empty directory", "out.png", []SaveOption{WithDirectory("")}, ErrInvalidConfig},
		{"bad jpeg quality", "out.jpg", []SaveOption{WithDirectory(t.TempDir()), WithJPEGQuality(0)}, ErrInvalidConfig},
		{"directory is a file", "out.png", []SaveOption{WithDirectory(filepath.Join(blocker, "sub"))}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := SaveBitmap(CreateTestBitmap(Opaque), tt.filename, tt.opts...)
			require.Error(t, err)
			assert.Empty(t, path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSaveBitmapNil(t *testing.T) {
	_, err := SaveBitmap(nil, "nil.png", WithDirectory(t.TempDir()))
	assert.ErrorIs(t, err, ErrEmptyBitmap)
}

func TestLoadBitmapErrors(t *testing.T) {
	_, err := LoadBitmap(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o600))
	_, err = LoadBitmap(garbage)
	assert.Error(t, err)
}
