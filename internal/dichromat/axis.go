package dichromat

import "fmt"

// Family is a class of dichromatic deficiency. Dichromatic and anomalous
// variants of one family share the same geometry.
type Family uint8

const (
	// Protan is missing or anomalous L (long wavelength) cones.
	Protan Family = iota
	// Deutan is missing or anomalous M (medium wavelength) cones.
	Deutan
	// Tritan is missing or anomalous S (short wavelength) cones.
	Tritan
	// Custom is an experimental geometry sharing the protan confusion point.
	Custom

	numFamilies
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Protan:
		return "protan"
	case Deutan:
		return "deutan"
	case Tritan:
		return "tritan"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Axis holds the simulation geometry of a family: the confusion point
// (ConfusionX, ConfusionY) and the color axis y = Slope*x + Intercept.
type Axis struct {
	ConfusionX, ConfusionY float64
	Slope, Intercept       float64
}

// axes are the empirical constants of Meyer and Greenberg as used by
// Brettel et al. Do not tune them independently of the source data.
var axes = [numFamilies]Axis{
	Protan: {ConfusionX: 0.735, ConfusionY: 0.265, Slope: 1.273463, Intercept: -0.073894},
	Deutan: {ConfusionX: 1.14, ConfusionY: -0.14, Slope: 0.968437, Intercept: 0.003331},
	Tritan: {ConfusionX: 0.171, ConfusionY: -0.003, Slope: 0.062921, Intercept: 0.292119},
	Custom: {ConfusionX: 0.735, ConfusionY: 0.265, Slope: -1.059259, Intercept: 1.026914},
}

// Axis returns the geometry of f. Unknown families use the [Custom] axis.
func (f Family) Axis() Axis {
	if f >= numFamilies {
		return axes[Custom]
	}
	return axes[f]
}

// Families returns all known families.
func Families() []Family {
	return []Family{Protan, Deutan, Tritan, Custom}
}
