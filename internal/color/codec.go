package color

import "math"

// Codec converts between encoded (0-255) and linear RGB under a fixed
// profile.
//
// Integer channels are decoded through a 256-entry lookup table built once
// per codec; fractional channels use the closed-form curve. A Codec is
// immutable after construction and safe for concurrent use.
type Codec struct {
	profile Profile
	gamma   float64
	lut     [256]float64
}

// NewCodec returns a codec for the given profile. The gamma exponent is
// only used by [ProfileGeneric] and must be finite and positive; callers
// validate it.
func NewCodec(profile Profile, gamma float64) *Codec {
	c := &Codec{profile: profile, gamma: gamma}
	for i := range c.lut {
		c.lut[i] = c.toLinear(float64(i) / 255)
	}
	return c
}

// Profile returns the transfer curve of the codec.
func (c *Codec) Profile() Profile { return c.profile }

// Gamma returns the power-law exponent used by [ProfileGeneric].
func (c *Codec) Gamma() float64 { return c.gamma }

func (c *Codec) toLinear(v float64) float64 {
	if c.profile == ProfileGeneric {
		return PowerToLinear(v, c.gamma)
	}
	return SRGBToLinear(v)
}

func (c *Codec) fromLinear(l float64) float64 {
	if c.profile == ProfileGeneric {
		return LinearToPower(l, c.gamma)
	}
	return LinearToSRGB(l)
}

// Decode converts an encoded channel in [0,255] to linear light in [0,1].
// Out-of-range input is clamped.
//
// Example:
//
//	l := NewCodec(ProfileSRGB, 2.2).Decode(128) // ~0.2158 (not 0.5!)
func (c *Codec) Decode(channel float64) float64 {
	if channel >= 0 && channel <= 255 && channel == math.Trunc(channel) {
		return c.lut[int(channel)]
	}
	return c.toLinear(clampUnit(channel / 255))
}

// DecodeRGB decodes three channels.
func (c *Codec) DecodeRGB(r, g, b float64) Linear {
	return Linear{R: c.Decode(r), G: c.Decode(g), B: c.Decode(b)}
}

// Encode converts linear light to an encoded channel in [0,255] without
// rounding. The input is clamped to [0,1] first.
func (c *Codec) Encode(l float64) float64 {
	return 255 * c.fromLinear(clampUnit(l))
}

// EncodeRGB encodes three linear components.
func (c *Codec) EncodeRGB(l Linear) [3]float64 {
	return [3]float64{c.Encode(l.R), c.Encode(l.G), c.Encode(l.B)}
}

// EncodeU8 encodes a linear component and rounds it to an 8-bit channel.
//
// Example:
//
//	s := NewCodec(ProfileSRGB, 2.2).EncodeU8(0.5) // 188 (not 128!)
func (c *Codec) EncodeU8(l float64) uint8 {
	return Quantize(c.Encode(l))
}
