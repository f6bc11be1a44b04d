// Package blend provides the achromatic and anomalous blending steps of the
// deficiency simulation.
//
// Achromatic conversion happens in linear light. Anomalous blending mixes
// encoded channels, before they are rounded to 8 bits.
package blend

import "github.com/gogpu/colorblind/internal/color"

// AnomalyWeight is the weight of the full dichromatic simulation against the
// original color when simulating anomalous trichromacy. The blend lands
// AnomalyWeight/(AnomalyWeight+1), about 64%, of the way from the original
// to the simulation.
const AnomalyWeight = 1.75

// Mix returns (k*simulated + original)/(k+1) per channel.
func Mix(original, simulated [3]float64, k float64) [3]float64 {
	var out [3]float64
	for i := range out {
		out[i] = (k*simulated[i] + original[i]) / (k + 1)
	}
	return out
}

// Anomalize blends a dichromatic simulation with the original color using
// [AnomalyWeight].
func Anomalize(original, simulated [3]float64) [3]float64 {
	return Mix(original, simulated, AnomalyWeight)
}

// Gray returns the neutral linear color with the luminance of l.
// The weights are the Y row of the sRGB to XYZ matrix.
func Gray(l color.Linear) color.Linear {
	y := color.Luminance(l)
	return color.Linear{R: y, G: y, B: y}
}
