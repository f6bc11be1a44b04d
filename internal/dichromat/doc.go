// Package dichromat implements the Brettel–Viénot–Mollon dichromacy model
// on CIE xyY chromaticities.
//
// A dichromat confuses all colors lying on a line through the deficiency's
// confusion point. The simulated color is the intersection of that line
// with a fixed color axis, reconstructed at the source luminance and then
// pulled back into the RGB gamut along the direction of the neutral white.
//
// Everything in this package is pure: the confusion-axis table is read-only
// after initialization and safe for concurrent use.
//
// References:
//   - Brettel, Viénot, Mollon (1997), "Computerized simulation of color
//     appearance for dichromats", JOSA A 14(10).
//   - Meyer, Greenberg (1988), "Color-defective vision and computer graphics
//     displays", IEEE CG&A 8(5).
package dichromat
