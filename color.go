package colorblind

import (
	"fmt"
	"image/color"

	icolor "github.com/gogpu/colorblind/internal/color"
)

// RGB is an opaque color with 8-bit sRGB-encoded channels.
//
// RGB is a plain value: copy it freely. It implements [color.Color].
type RGB struct {
	R, G, B uint8
}

// RGBA implements the [color.Color] interface. Alpha is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex formats the color as "#RRGGBB" with upper-case digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the same as [RGB.Hex].
func (c RGB) String() string {
	return c.Hex()
}

// channels returns the channels as floats in [0,255].
func (c RGB) channels() [3]float64 {
	return [3]float64{float64(c.R), float64(c.G), float64(c.B)}
}

// FromColor converts a standard color.Color to RGB.
// Premultiplied colors are un-premultiplied first; alpha is dropped.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// FromFloats builds a color from channels on the 0-255 scale.
// Channels are clamped to [0,255] and rounded to the nearest integer.
// NaN channels become 0.
func FromFloats(r, g, b float64) RGB {
	return RGB{
		R: icolor.Quantize(r),
		G: icolor.Quantize(g),
		B: icolor.Quantize(b),
	}
}

// fromChannels is FromFloats over an array.
func fromChannels(v [3]float64) RGB {
	return FromFloats(v[0], v[1], v[2])
}

// Common colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)
