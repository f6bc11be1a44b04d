package color

// D65 white point chromaticity, with z = 1 - x - y.
const (
	WhiteX = 0.312713
	WhiteY = 0.329016
	WhiteZ = 0.358271
)

// rgbToXYZ is the sRGB (D65) linear RGB to CIE XYZ matrix, row-major.
var rgbToXYZ = [3][3]float64{
	{0.41242371206635076, 0.3575793401363035, 0.1804662232369621},
	{0.21265606784927693, 0.715157818248362, 0.0721864539171564},
	{0.019331987577444885, 0.11919267420354762, 0.9504491124870351},
}

// xyzToRGB is the inverse of rgbToXYZ.
var xyzToRGB = [3][3]float64{
	{3.240712470389558, -1.5372626602963142, -0.49857440415943116},
	{-0.969259258688888, 1.875996969313966, 0.041556132211625726},
	{0.05563600315398933, -0.2039948802843549, 1.0570636917433989},
}

// XYZ is a CIE 1931 XYZ color relative to D65, with Y = 1 for white.
type XYZ struct {
	X, Y, Z float64
}

// Chromaticity is a color in CIE xyY coordinates.
// X and Y are the projective coordinates x and y; Lum is the luminance Y.
type Chromaticity struct {
	X, Y, Lum float64
}

// LinearToXYZ converts linear RGB to XYZ.
func LinearToXYZ(l Linear) XYZ {
	m := &rgbToXYZ
	return XYZ{
		X: m[0][0]*l.R + m[0][1]*l.G + m[0][2]*l.B,
		Y: m[1][0]*l.R + m[1][1]*l.G + m[1][2]*l.B,
		Z: m[2][0]*l.R + m[2][1]*l.G + m[2][2]*l.B,
	}
}

// XYZToLinear converts XYZ to linear RGB. The result is not clamped.
func XYZToLinear(c XYZ) Linear {
	m := &xyzToRGB
	return Linear{
		R: m[0][0]*c.X + m[0][1]*c.Y + m[0][2]*c.Z,
		G: m[1][0]*c.X + m[1][1]*c.Y + m[1][2]*c.Z,
		B: m[2][0]*c.X + m[2][1]*c.Y + m[2][2]*c.Z,
	}
}

// Luminance returns the Y component of a linear RGB color.
func Luminance(l Linear) float64 {
	m := &rgbToXYZ
	return m[1][0]*l.R + m[1][1]*l.G + m[1][2]*l.B
}

// Chromaticity projects c onto the xy plane, keeping its luminance.
// Black (X+Y+Z = 0) maps to x = y = 0.
func (c XYZ) Chromaticity() Chromaticity {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return Chromaticity{}
	}
	return Chromaticity{X: c.X / sum, Y: c.Y / sum, Lum: c.Y}
}

// XYZ reconstructs the color at chromaticity (x, y) with luminance Lum.
// A chromaticity with y = 0 has no defined XYZ and yields zero.
func (c Chromaticity) XYZ() XYZ {
	if c.Y == 0 {
		return XYZ{}
	}
	k := c.Lum / c.Y
	return XYZ{
		X: c.X * k,
		Y: c.Lum,
		Z: (1 - c.X - c.Y) * k,
	}
}

// Neutral returns the D65 white at luminance y.
func Neutral(y float64) XYZ {
	return XYZ{
		X: WhiteX * y / WhiteY,
		Y: y,
		Z: WhiteZ * y / WhiteY,
	}
}
