package colorblind

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ParseHex parses a color of exactly six hex digits, with or without a
// leading '#'. Digits are case-insensitive.
//
// Example:
//
//	c, err := colorblind.ParseHex("#42dead") // RGB{0x42, 0xDE, 0xAD}
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: hex color %q has %d digits, want 6",
			ErrInvalidFormat, s, len(digits))
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: hex color %q: %v", ErrInvalidFormat, s, err)
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// ParseName looks up an SVG 1.1 color keyword such as "tomato".
// Matching ignores case and surrounding space.
func ParseName(name string) (RGB, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	c, ok := colornames.Map[key]
	if !ok {
		return RGB{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidFormat, name)
	}
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

// FromSlice builds a color from an ordered R, G, B sequence on the 0-255
// scale. The sequence must have exactly three elements. Channels are clamped
// and rounded as by [FromFloats].
func FromSlice[T constraints.Integer | constraints.Float](v []T) (RGB, error) {
	if len(v) != 3 {
		return RGB{}, fmt.Errorf("%w: got %d channels, want 3", ErrInvalidFormat, len(v))
	}
	var ch [3]float64
	for i, x := range v {
		f := float64(x)
		if math.IsNaN(f) {
			return RGB{}, fmt.Errorf("%w: channel %d is NaN", ErrInvalidFormat, i)
		}
		ch[i] = f
	}
	return fromChannels(ch), nil
}

// recordKeys maps case-folded record keys to channel indices.
var recordKeys = map[string]int{
	"r": 0, "red": 0,
	"g": 1, "green": 1,
	"b": 2, "blue": 2,
}

// FromRecord builds a color from a keyed record with the channels under
// "r", "g" and "b" (or "red", "green" and "blue"), matched without regard
// to case. Other keys are ignored.
//
// Values may be any Go number or a [json.Number], so the result of
// decoding a JSON object into map[string]any is accepted directly.
func FromRecord[V any](m map[string]V) (RGB, error) {
	var ch [3]float64
	var seen [3]bool
	fold := cases.Fold()
	for k, v := range m {
		i, ok := recordKeys[fold.String(k)]
		if !ok {
			continue
		}
		f, err := toFloat(v)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: key %q: %v", ErrInvalidFormat, k, err)
		}
		ch[i] = f
		seen[i] = true
	}
	for i, ok := range seen {
		if !ok {
			return RGB{}, fmt.Errorf("%w: record has no %q channel",
				ErrInvalidFormat, []string{"r", "g", "b"}[i])
		}
	}
	return fromChannels(ch), nil
}

func toFloat(v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		var err error
		f, err = x.Float64()
		if err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("unsupported channel type %T", v)
	}
	if math.IsNaN(f) {
		return 0, errors.New("channel is NaN")
	}
	return f, nil
}

// Parse converts any supported input form to a color:
//   - string: six hex digits with optional '#', or an SVG color keyword
//   - []int, []float64, []uint8 and similar slices, or [3]int, [3]float64,
//     [3]uint8 arrays: an R, G, B sequence
//   - map[string]any, map[string]float64, map[string]int: a record, see [FromRecord]
//   - RGB, *RGB, or any other [color.Color]
//
// Inputs in other forms fail with [ErrInvalidFormat].
func Parse(v any) (RGB, error) {
	switch x := v.(type) {
	case string:
		return parseString(x)
	case RGB:
		return x, nil
	case *RGB:
		if x == nil {
			return RGB{}, fmt.Errorf("%w: nil *RGB", ErrInvalidFormat)
		}
		return *x, nil
	case []int:
		return FromSlice(x)
	case []int64:
		return FromSlice(x)
	case []uint8:
		return FromSlice(x)
	case []float32:
		return FromSlice(x)
	case []float64:
		return FromSlice(x)
	case [3]int:
		return FromSlice(x[:])
	case [3]uint8:
		return RGB{R: x[0], G: x[1], B: x[2]}, nil
	case [3]float64:
		return FromSlice(x[:])
	case []any:
		if len(x) != 3 {
			return RGB{}, fmt.Errorf("%w: got %d channels, want 3", ErrInvalidFormat, len(x))
		}
		var ch [3]float64
		for i, e := range x {
			f, err := toFloat(e)
			if err != nil {
				return RGB{}, fmt.Errorf("%w: channel %d: %v", ErrInvalidFormat, i, err)
			}
			ch[i] = f
		}
		return fromChannels(ch), nil
	case map[string]any:
		return FromRecord(x)
	case map[string]float64:
		return FromRecord(x)
	case map[string]int:
		return FromRecord(x)
	case color.Color:
		return FromColor(x), nil
	case nil:
		return RGB{}, fmt.Errorf("%w: nil input", ErrInvalidFormat)
	default:
		return RGB{}, fmt.Errorf("%w: unsupported input type %T", ErrInvalidFormat, v)
	}
}

// parseString treats strings starting with '#' or made only of hex digits
// as hex colors, and anything else as a color keyword.
func parseString(s string) (RGB, error) {
	if strings.HasPrefix(s, "#") || isHexDigits(s) {
		return ParseHex(s)
	}
	return ParseName(s)
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
