package skiatest

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	skiasharp "github.com/Odirb/SkiaSharp"
)

// Size is the width and height of the fixture bitmap.
const Size = 40

// sampleInset is the distance of each sample point from the nearest
// bitmap edges. It lands in the middle of a quadrant.
const sampleInset = 10

// Quadrant is one quarter of the fixture: where it is drawn, which pixel
// is sampled to verify it and its base color before alpha is applied.
type Quadrant struct {
	Name   string
	Bounds image.Rectangle
	Sample image.Point
	Color  color.NRGBA
}

// Quadrants returns the fixture layout in drawing order: top-left,
// top-right, bottom-left, bottom-right.
func Quadrants() []Quadrant {
	h := Size / 2
	return []Quadrant{
		{Name: "top-left", Bounds: image.Rect(0, 0, h, h), Sample: image.Pt(sampleInset, sampleInset), Color: Red},
		{Name: "top-right", Bounds: image.Rect(h, 0, Size, h), Sample: image.Pt(Size-sampleInset, sampleInset), Color: Green},
		{Name: "bottom-left", Bounds: image.Rect(0, h, h, Size), Sample: image.Pt(sampleInset, Size-sampleInset), Color: Blue},
		{Name: "bottom-right", Bounds: image.Rect(h, h, Size, Size), Sample: image.Pt(Size-sampleInset, Size-sampleInset), Color: Yellow},
	}
}

// CreateTestBitmap returns a new Size x Size bitmap cleared to transparent
// with each quadrant filled in its marker color at the given alpha.
// Use [Opaque] for the default fully opaque fixture. The caller owns the
// returned pixmap.
func CreateTestBitmap(alpha uint8) *gg.Pixmap {
	bmp := gg.NewPixmap(Size, Size)
	bmp.Clear(gg.Transparent)

	dc := gg.NewContext(Size, Size, gg.WithPixmap(bmp))
	defer func() {
		_ = dc.Close()
	}()

	for _, q := range Quadrants() {
		if err := fillRect(dc, q.Bounds, WithAlpha(q.Color, alpha)); err != nil {
			skiasharp.Logger().Warn("skiatest: quadrant fill failed", "quadrant", q.Name, "err", err)
		}
	}
	return bmp
}

// fillRect fills r with the straight-alpha color c.
func fillRect(dc *gg.Context, r image.Rectangle, c color.NRGBA) error {
	dc.SetRGBA(unit(c.R), unit(c.G), unit(c.B), unit(c.A))
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	return dc.Fill()
}

// ExpectedColor returns the premultiplied pixel the engine stores inside
// an area filled with c at the given alpha. It is the value the
// validators expect at each sample point.
func ExpectedColor(c color.NRGBA, alpha uint8) color.RGBA {
	// The center pixel of a 3x3 fill has no edge coverage.
	const n = 3
	pm := gg.NewPixmap(n, n)
	pm.Clear(gg.Transparent)

	dc := gg.NewContext(n, n, gg.WithPixmap(pm))
	if err := fillRect(dc, image.Rect(0, 0, n, n), WithAlpha(c, alpha)); err != nil {
		skiasharp.Logger().Warn("skiatest: reference fill failed", "err", err)
	}
	_ = dc.Close()
	return premultiplied(pm.At(1, 1))
}

// unit maps an 8-bit channel to gg's [0, 1] range.
func unit(v uint8) float64 {
	return float64(v) / 255
}
