// Package color provides the gamma codec and linear color-space conversions
// used by the deficiency simulation pipeline.
//
// Encoded RGB channels live in [0,255]. Linear RGB components are nominally
// in [0,1], but intermediate results of a dichromatic projection may leave
// that range until the gamut mapper pulls them back.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - IEC 61966-2-1:1999 (sRGB primaries and D65 white point)
package color

import "fmt"

// Profile selects the transfer curve between encoded and linear RGB.
type Profile uint8

const (
	// ProfileSRGB is the piecewise sRGB curve.
	ProfileSRGB Profile = iota
	// ProfileGeneric is a pure power-law curve with a configurable gamma.
	ProfileGeneric
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case ProfileSRGB:
		return "sRGB"
	case ProfileGeneric:
		return "generic"
	default:
		return fmt.Sprintf("Profile(%d)", uint8(p))
	}
}

// Linear is an RGB color in linear light.
type Linear struct {
	R, G, B float64
}

// InGamut reports whether all components are within [0,1].
func (l Linear) InGamut() bool {
	return l.R >= 0 && l.R <= 1 && l.G >= 0 && l.G <= 1 && l.B >= 0 && l.B <= 1
}

// Add returns l + t*d.
func (l Linear) Add(d Linear, t float64) Linear {
	return Linear{
		R: l.R + t*d.R,
		G: l.G + t*d.G,
		B: l.B + t*d.B,
	}
}

// Sub returns the component-wise difference l - o.
func (l Linear) Sub(o Linear) Linear {
	return Linear{R: l.R - o.R, G: l.G - o.G, B: l.B - o.B}
}

// Channels returns the components as an array, in R, G, B order.
func (l Linear) Channels() [3]float64 {
	return [3]float64{l.R, l.G, l.B}
}
