package skiatest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// LoadBitmap decodes an image file into a new bitmap. PNG, JPEG, BMP,
// TIFF and WebP are recognized by content, not by extension.
func LoadBitmap(path string) (*gg.Pixmap, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("skiatest: load: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("skiatest: decode %s: %w", path, err)
	}
	return toPixmap(img), nil
}

// toPixmap copies img into a bitmap with straight alpha.
func toPixmap(img image.Image) *gg.Pixmap {
	b := img.Bounds()
	pm := gg.NewPixmap(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			pm.SetPixel(x, y, gg.RGBA{R: unit(c.R), G: unit(c.G), B: unit(c.B), A: unit(c.A)})
		}
	}
	return pm
}
