package color

import (
	"testing"
)

var testCodecs = []struct {
	name    string
	profile Profile
	gamma   float64
}{
	{"sRGB", ProfileSRGB, 2.2},
	{"generic 2.2", ProfileGeneric, 2.2},
	{"generic 1.8", ProfileGeneric, 1.8},
	{"generic 1.0", ProfileGeneric, 1.0},
}

// TestCodecRoundTrip checks that every 8-bit channel survives
// decode followed by encode.
func TestCodecRoundTrip(t *testing.T) {
	for _, tc := range testCodecs {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCodec(tc.profile, tc.gamma)
			for i := 0; i <= 255; i++ {
				lin := c.Decode(float64(i))
				if got := c.EncodeU8(lin); int(got) != i {
					t.Errorf("EncodeU8(Decode(%d)) = %d", i, got)
				}
				if got := c.Encode(lin); !floatNear(got, float64(i), 1e-9) {
					t.Errorf("Encode(Decode(%d)) = %v", i, got)
				}
			}
		})
	}
}

// TestCodecLUTMatchesCurve checks that the lookup table agrees with the
// closed-form curve used for fractional input.
func TestCodecLUTMatchesCurve(t *testing.T) {
	for _, tc := range testCodecs {
		c := NewCodec(tc.profile, tc.gamma)
		for i := 0; i <= 255; i++ {
			v := float64(i) / 255
			var want float64
			if tc.profile == ProfileSRGB {
				want = SRGBToLinear(v)
			} else {
				want = PowerToLinear(v, tc.gamma)
			}
			if got := c.Decode(float64(i)); got != want {
				t.Errorf("%s: Decode(%d) = %v, want %v", tc.name, i, got, want)
			}
		}
	}
}

func TestCodecDecodeFractionalAndClamped(t *testing.T) {
	c := NewCodec(ProfileSRGB, 2.2)

	lo, hi := c.Decode(127), c.Decode(128)
	mid := c.Decode(127.5)
	if !(mid > lo && mid < hi) {
		t.Errorf("Decode(127.5) = %v, want within (%v, %v)", mid, lo, hi)
	}
	if got := c.Decode(-4); got != 0 {
		t.Errorf("Decode(-4) = %v, want 0", got)
	}
	if got := c.Decode(300); got != 1 {
		t.Errorf("Decode(300) = %v, want 1", got)
	}
}

func TestCodecEncodeClamps(t *testing.T) {
	for _, tc := range testCodecs {
		c := NewCodec(tc.profile, tc.gamma)
		if got := c.Encode(-0.3); got != 0 {
			t.Errorf("%s: Encode(-0.3) = %v, want 0", tc.name, got)
		}
		if got := c.Encode(1.7); got != 255 {
			t.Errorf("%s: Encode(1.7) = %v, want 255", tc.name, got)
		}
	}
}

func TestCodecKnownValues(t *testing.T) {
	srgb := NewCodec(ProfileSRGB, 2.2)
	if got := srgb.Decode(128); !floatNear(got, 0.2158605, 1e-6) {
		t.Errorf("sRGB Decode(128) = %v", got)
	}
	if got := srgb.EncodeU8(0.5); got != 188 {
		t.Errorf("sRGB EncodeU8(0.5) = %d, want 188", got)
	}

	generic := NewCodec(ProfileGeneric, 2.2)
	if got := generic.EncodeU8(0.5); got != 186 {
		t.Errorf("generic EncodeU8(0.5) = %d, want 186", got)
	}
	if generic.Profile() != ProfileGeneric || generic.Gamma() != 2.2 {
		t.Errorf("accessors = %v, %v", generic.Profile(), generic.Gamma())
	}
}

func BenchmarkCodecDecode(b *testing.B) {
	c := NewCodec(ProfileSRGB, 2.2)
	b.ReportAllocs()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = c.Decode(float64(i & 0xff))
	}
	_ = sink
}

func BenchmarkCodecEncode(b *testing.B) {
	c := NewCodec(ProfileSRGB, 2.2)
	b.ReportAllocs()
	var sink uint8
	for i := 0; i < b.N; i++ {
		sink = c.EncodeU8(float64(i&0xff) / 255)
	}
	_ = sink
}
