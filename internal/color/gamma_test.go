package color

import (
	"math"
	"testing"
)

func floatNear(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// TestSRGBToLinearEdgeCases tests edge cases for sRGB to linear conversion.
func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, math.Pow((0.04046+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-12) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestLinearToSRGBEdgeCases tests edge cases for linear to sRGB conversion.
func TestLinearToSRGBEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"just above threshold", 0.0031309, 1.055*math.Pow(0.0031309, 1.0/2.4) - 0.055},
		{"mid gray linear", 0.21404, 1.055*math.Pow(0.21404, 1.0/2.4) - 0.055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToSRGB(tt.input)
			if !floatNear(got, tt.want, 1e-12) {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPowerCurveInverse(t *testing.T) {
	for _, gamma := range []float64{1, 1.8, 2.2, 2.4} {
		for i := 0; i <= 100; i++ {
			v := float64(i) / 100
			got := LinearToPower(PowerToLinear(v, gamma), gamma)
			if !floatNear(got, v, 1e-12) {
				t.Errorf("gamma %v: round trip of %v = %v", gamma, v, got)
			}
		}
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{127.5, 128},
		{254.4, 254},
		{255, 255},
		{300, 255},
		{math.NaN(), 0},
		{math.Inf(1), 255},
	}
	for _, tt := range tests {
		if got := Quantize(tt.in); got != tt.want {
			t.Errorf("Quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestProfileString(t *testing.T) {
	if got := ProfileSRGB.String(); got != "sRGB" {
		t.Errorf("ProfileSRGB.String() = %q", got)
	}
	if got := ProfileGeneric.String(); got != "generic" {
		t.Errorf("ProfileGeneric.String() = %q", got)
	}
	if got := Profile(9).String(); got != "Profile(9)" {
		t.Errorf("Profile(9).String() = %q", got)
	}
}
