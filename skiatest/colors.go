package skiatest

import "image/color"

// Fixture marker colors. These are the web colors of the same name, so
// Green is half intensity.
var (
	Red         = color.NRGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	Green       = color.NRGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xFF}
	Blue        = color.NRGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
	Yellow      = color.NRGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}
	Transparent = color.NRGBA{}
)

// Opaque is the default fixture alpha.
const Opaque uint8 = 0xFF

// WithAlpha returns c with its alpha replaced. The color channels are left
// untouched (straight alpha).
func WithAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}

// premultiplied converts any color to 8-bit premultiplied RGBA.
func premultiplied(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// MatchColor reports whether want and got are the same color within
// tolerance per channel. Colors are compared premultiplied, so every color
// with zero alpha matches every other one.
func MatchColor(want, got color.Color, tolerance int) bool {
	w, g := premultiplied(want), premultiplied(got)
	return near(w.R, g.R, tolerance) &&
		near(w.G, g.G, tolerance) &&
		near(w.B, g.B, tolerance) &&
		near(w.A, g.A, tolerance)
}

func near(a, b uint8, tolerance int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
