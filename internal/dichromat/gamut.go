package dichromat

import "github.com/gogpu/colorblind/internal/color"

// MapToGamut pulls sim toward the neutral white of the same luminance until
// every linear RGB channel lies in [0,1].
//
// All channels move by one shared factor t along the direction to the
// neutral; no channel is clipped on its own. The result is returned as XYZ,
// re-derived from the shifted RGB.
func MapToGamut(sim color.XYZ) color.XYZ {
	rgb := color.XYZToLinear(sim)
	delta := color.XYZToLinear(color.Neutral(sim.Y)).Sub(rgb)
	t := ShiftFactor(rgb, delta)
	return color.LinearToXYZ(rgb.Add(delta, t))
}

// ShiftFactor returns the largest per-channel factor in [0,1] that moves a
// channel of rgb onto its nearest bound (0 below zero, 1 otherwise) along
// delta. Channels with zero delta, or whose factor falls outside [0,1],
// do not constrain the shift.
func ShiftFactor(rgb, delta color.Linear) float64 {
	v := rgb.Channels()
	d := delta.Channels()
	var tMax float64
	for i := range v {
		if d[i] == 0 {
			continue
		}
		target := 1.0
		if v[i] < 0 {
			target = 0
		}
		t := (target - v[i]) / d[i]
		if t < 0 || t > 1 {
			continue
		}
		if t > tMax {
			tMax = t
		}
	}
	return tMax
}
