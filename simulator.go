package colorblind

import (
	"fmt"
	"math"

	"github.com/gogpu/colorblind/internal/blend"
	icolor "github.com/gogpu/colorblind/internal/color"
	"github.com/gogpu/colorblind/internal/dichromat"
)

// Simulator simulates color-vision deficiencies under a fixed profile.
//
// A Simulator is immutable once created and safe for concurrent use.
// Each call is independent, so callers may map a Simulator over many
// colors in parallel without coordination.
type Simulator struct {
	profile Profile
	codec   *icolor.Codec
}

// New creates a Simulator.
//
// Example:
//
//	sim, err := colorblind.New(colorblind.WithProfile(colorblind.ProfileGeneric))
//	if err != nil {
//	    return err
//	}
//	out := sim.Deuteranopia(colorblind.RGB{R: 255})
func New(opts ...Option) (*Simulator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, ok := o.profile.internal()
	if !ok {
		Logger().Warn("colorblind: rejected profile", "profile", o.profile)
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedProfile, o.profile)
	}
	if !(o.gamma > 0) || math.IsInf(o.gamma, 0) {
		Logger().Warn("colorblind: rejected gamma", "gamma", o.gamma)
		return nil, fmt.Errorf("%w: got %v", ErrInvalidGamma, o.gamma)
	}

	return &Simulator{
		profile: o.profile,
		codec:   icolor.NewCodec(p, o.gamma),
	}, nil
}

// Profile returns the color profile of s.
func (s *Simulator) Profile() Profile { return s.profile }

// Gamma returns the exponent of the power-law curve. It only affects
// [ProfileGeneric].
func (s *Simulator) Gamma() float64 { return s.codec.Gamma() }

// Request is a single simulation.
type Request struct {
	// Color is the source color.
	Color RGB
	// Kind is the deficiency to simulate.
	Kind Kind
	// Anomalize blends the full simulation back toward Color, modelling
	// anomalous trichromacy rather than dichromacy.
	Anomalize bool
}

// NewRequest returns a request for c under k, anomalized exactly when k is
// one of the "-omaly" kinds.
func NewRequest(c RGB, k Kind) Request {
	return Request{Color: c, Kind: k, Anomalize: k.Anomalous()}
}

// Run performs the simulation described by req.
// It fails only with [ErrUnsupportedKind].
func (s *Simulator) Run(req Request) (RGB, error) {
	if !req.Kind.Valid() {
		return RGB{}, fmt.Errorf("%w: %v", ErrUnsupportedKind, req.Kind)
	}
	return s.run(req), nil
}

// Simulate returns c as seen with deficiency k, using the default
// anomalize flag of k.
func (s *Simulator) Simulate(c RGB, k Kind) (RGB, error) {
	return s.Run(NewRequest(c, k))
}

// SimulateHex parses a hex color, simulates it under k and formats the
// result as "#RRGGBB".
func (s *Simulator) SimulateHex(hex string, k Kind) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	out, err := s.Simulate(c, k)
	if err != nil {
		return "", err
	}
	return out.Hex(), nil
}

// run is the pipeline for a request with a valid kind:
// decode, simulate in linear light, encode, optionally blend, round.
func (s *Simulator) run(req Request) RGB {
	info := kinds[req.Kind]
	original := req.Color.channels()
	lin := s.codec.DecodeRGB(original[0], original[1], original[2])

	var sim icolor.Linear
	if info.achromatic {
		sim = blend.Gray(lin)
	} else {
		xyz, d := dichromat.Simulate(icolor.LinearToXYZ(lin), info.family)
		if d != dichromat.Regular {
			Logger().Debug("colorblind: degenerate confusion line",
				"kind", req.Kind, "color", req.Color, "degeneracy", d)
		}
		sim = icolor.XYZToLinear(xyz)
	}

	out := s.codec.EncodeRGB(sim)
	if req.Anomalize {
		out = blend.Anomalize(original, out)
	}
	return fromChannels(out)
}
