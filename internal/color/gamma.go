package color

import "math"

// Thresholds of the linear segment of the sRGB curve.
const (
	srgbDecodeThreshold = 0.04045
	srgbEncodeThreshold = 0.0031308
)

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= srgbDecodeThreshold {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float64) float64 {
	if l <= srgbEncodeThreshold {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// PowerToLinear applies a power-law decoding curve.
func PowerToLinear(v, gamma float64) float64 {
	return math.Pow(v, gamma)
}

// LinearToPower applies the inverse of [PowerToLinear].
func LinearToPower(l, gamma float64) float64 {
	return math.Pow(l, 1/gamma)
}

// clampUnit restricts v to [0,1].
func clampUnit(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

// Quantize clamps an encoded channel to [0,255] and rounds it to the
// nearest integer.
func Quantize(v float64) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 255 {
		return 255
	}
	//nolint:gosec // G115: v is clamped to [0,255] range
	return uint8(math.Round(v))
}
