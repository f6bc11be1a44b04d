package colorblind

import (
	"fmt"

	icolor "github.com/gogpu/colorblind/internal/color"
)

// DefaultGamma is the power-law exponent used by [ProfileGeneric] unless
// [WithGamma] says otherwise.
const DefaultGamma = 2.2

// Profile selects the transfer curve between encoded RGB and linear light.
type Profile uint8

const (
	// ProfileSRGB is the piecewise sRGB curve. It ignores the gamma option.
	ProfileSRGB Profile = iota
	// ProfileGeneric is a pure power-law curve, v^gamma.
	ProfileGeneric
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case ProfileSRGB:
		return "sRGB"
	case ProfileGeneric:
		return "generic"
	default:
		return fmt.Sprintf("Profile(%d)", uint8(p))
	}
}

func (p Profile) internal() (icolor.Profile, bool) {
	switch p {
	case ProfileSRGB:
		return icolor.ProfileSRGB, true
	case ProfileGeneric:
		return icolor.ProfileGeneric, true
	default:
		return 0, false
	}
}

// Option configures a Simulator during creation.
// Use functional options to customize the transfer curve.
//
// Example:
//
//	// Default sRGB curve
//	sim, err := colorblind.New()
//
//	// Power-law curve with gamma 1.8
//	sim, err := colorblind.New(colorblind.WithProfile(colorblind.ProfileGeneric),
//	    colorblind.WithGamma(1.8))
type Option func(*options)

// options holds optional configuration for Simulator creation.
type options struct {
	profile Profile
	gamma   float64
}

// defaultOptions returns the default simulator options.
func defaultOptions() options {
	return options{
		profile: ProfileSRGB,
		gamma:   DefaultGamma,
	}
}

// WithProfile sets the color profile.
func WithProfile(p Profile) Option {
	return func(o *options) {
		o.profile = p
	}
}

// WithGamma sets the exponent of the [ProfileGeneric] curve.
// It must be finite and positive; [New] rejects other values even when the
// sRGB profile is selected.
func WithGamma(gamma float64) Option {
	return func(o *options) {
		o.gamma = gamma
	}
}
