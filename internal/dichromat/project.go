package dichromat

import (
	"fmt"
	"math"

	"github.com/gogpu/colorblind/internal/color"
)

// parallelEpsilon is the slope difference below which the confusion line
// is treated as parallel to the color axis.
const parallelEpsilon = 1e-12

// Degeneracy reports whether a projection left the general case.
type Degeneracy uint8

const (
	// Regular is the general line intersection.
	Regular Degeneracy = iota
	// Vertical means the source shares its x coordinate with the confusion
	// point. The intersection is still exact.
	Vertical
	// Parallel means the confusion line is parallel to the color axis.
	// The source chromaticity is returned unchanged.
	Parallel
	// Unbounded means the intersection has y <= 0 or is not finite, so no
	// luminance-preserving XYZ exists. The source chromaticity is returned
	// unchanged. This cannot happen for the built-in axes on in-gamut
	// input.
	Unbounded
)

// String returns the degeneracy name.
func (d Degeneracy) String() string {
	switch d {
	case Regular:
		return "regular"
	case Vertical:
		return "vertical"
	case Parallel:
		return "parallel"
	case Unbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("Degeneracy(%d)", uint8(d))
	}
}

// Fallback reports whether the projection returned the source unchanged.
func (d Degeneracy) Fallback() bool {
	return d == Parallel || d == Unbounded
}

// Project moves src along its confusion line onto the color axis of a.
// The luminance of src is carried over unchanged.
func (a Axis) Project(src color.Chromaticity) (color.Chromaticity, Degeneracy) {
	var x1 float64
	kind := Regular
	if src.X == a.ConfusionX {
		kind = Vertical
		x1 = a.ConfusionX
	} else {
		s := (src.Y - a.ConfusionY) / (src.X - a.ConfusionX)
		if math.Abs(s-a.Slope) < parallelEpsilon {
			return src, Parallel
		}
		b := src.Y - s*src.X
		x1 = (a.Intercept - b) / (s - a.Slope)
	}
	y1 := a.Slope*x1 + a.Intercept

	if !(y1 > 0) || math.IsInf(x1, 0) || math.IsNaN(x1) || math.IsInf(y1, 0) {
		return src, Unbounded
	}
	return color.Chromaticity{X: x1, Y: y1, Lum: src.Lum}, kind
}

// Simulate returns the dichromatic simulation of src under family f,
// mapped into the RGB gamut. Black is returned unchanged.
func Simulate(src color.XYZ, f Family) (color.XYZ, Degeneracy) {
	if src.Y == 0 {
		return src, Regular
	}
	c, d := f.Axis().Project(src.Chromaticity())
	if d.Fallback() {
		return src, d
	}
	return MapToGamut(c.XYZ()), d
}
