// Package colorblind simulates how colors appear to people with
// color-vision deficiencies.
//
// # Overview
//
// colorblind is a pure Go library for accessibility tooling: design systems,
// image processors and UI auditors that need to preview content under
// dichromatic, anomalous trichromatic or achromatic vision. Every call is a
// pure function of its input; there is no I/O and no shared mutable state.
//
// # Quick Start
//
//	import "github.com/gogpu/colorblind"
//
//	c, err := colorblind.ParseHex("#42dead")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(colorblind.Protanopia(c))   // #D2C5A1
//	fmt.Println(colorblind.Achromatopsia(c)) // #C6C6C6
//
// # Deficiencies
//
// Eight kinds are supported, in four groups:
//   - Protanopia, Protanomaly: missing or anomalous L (red) cones
//   - Deuteranopia, Deuteranomaly: missing or anomalous M (green) cones
//   - Tritanopia, Tritanomaly: missing or anomalous S (blue) cones
//   - Achromatopsia, Achromatomaly: total or partial color blindness
//
// The "-opia" kinds use the Brettel–Viénot–Mollon dichromat model: the color
// is moved along its confusion line in CIE xy chromaticity onto a fixed
// color axis, keeping its luminance, and pulled back into the sRGB gamut
// toward the neutral white. Achromatopsia replaces the color with the gray of
// the same luminance.
//
// The "-omaly" kinds blend the full simulation with the original color,
// landing about 64% of the way to the simulation. Use [Request.Anomalize]
// to control blending independently of the kind.
//
// # Input Forms
//
// [Parse] accepts hex strings, SVG color keywords, R, G, B sequences,
// keyed records and any [image/color.Color]. [RGB.Hex] formats results as
// "#RRGGBB".
//
// # Profiles
//
// By default channels are decoded with the sRGB curve. [WithProfile] and
// [WithGamma] select a pure power-law curve instead.
//
// # Concurrency
//
// A [Simulator] is immutable and safe for concurrent use. Package-level
// functions use a shared default simulator.
package colorblind

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
