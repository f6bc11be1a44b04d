package colorblind

import "errors"

// Sentinel errors for the colorblind package.
// Errors returned by this package wrap one of these; test with [errors.Is].
var (
	// ErrInvalidFormat is returned when a color cannot be parsed: a hex
	// string without exactly 6 digits, a channel sequence without exactly
	// 3 elements, a record without r, g and b, or an unsupported input type.
	ErrInvalidFormat = errors.New("colorblind: invalid color format")

	// ErrUnsupportedKind is returned for a deficiency kind outside the
	// eight known kinds.
	ErrUnsupportedKind = errors.New("colorblind: unsupported deficiency kind")

	// ErrInvalidGamma is returned when the gamma exponent is not a finite
	// positive number.
	ErrInvalidGamma = errors.New("colorblind: gamma must be finite and positive")

	// ErrUnsupportedProfile is returned for an unknown color profile.
	ErrUnsupportedProfile = errors.New("colorblind: unsupported color profile")
)
