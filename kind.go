package colorblind

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/colorblind/internal/dichromat"
)

// Kind is a color-vision deficiency.
type Kind uint8

const (
	// KindProtanopia is the absence of L (red) cones.
	KindProtanopia Kind = iota
	// KindProtanomaly is anomalous L cones.
	KindProtanomaly
	// KindDeuteranopia is the absence of M (green) cones.
	KindDeuteranopia
	// KindDeuteranomaly is anomalous M cones.
	KindDeuteranomaly
	// KindTritanopia is the absence of S (blue) cones.
	KindTritanopia
	// KindTritanomaly is anomalous S cones.
	KindTritanomaly
	// KindAchromatopsia is total color blindness.
	KindAchromatopsia
	// KindAchromatomaly is partial color blindness.
	KindAchromatomaly

	numKinds
)

type kindInfo struct {
	name       string
	family     dichromat.Family
	achromatic bool
	anomalous  bool
}

// kinds maps every Kind to its simulation family. Anomalous kinds share the
// geometry of their dichromatic counterpart.
var kinds = [numKinds]kindInfo{
	KindProtanopia:    {name: "protanopia", family: dichromat.Protan},
	KindProtanomaly:   {name: "protanomaly", family: dichromat.Protan, anomalous: true},
	KindDeuteranopia:  {name: "deuteranopia", family: dichromat.Deutan},
	KindDeuteranomaly: {name: "deuteranomaly", family: dichromat.Deutan, anomalous: true},
	KindTritanopia:    {name: "tritanopia", family: dichromat.Tritan},
	KindTritanomaly:   {name: "tritanomaly", family: dichromat.Tritan, anomalous: true},
	KindAchromatopsia: {name: "achromatopsia", achromatic: true},
	KindAchromatomaly: {name: "achromatomaly", achromatic: true, anomalous: true},
}

// kindAliases are the family short names, resolving to the full deficiency.
var kindAliases = map[string]Kind{
	"protan":  KindProtanopia,
	"deutan":  KindDeuteranopia,
	"tritan":  KindTritanopia,
	"achroma": KindAchromatopsia,
}

// kindsByName is built once from kinds and kindAliases.
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds)+len(kindAliases))
	for k, info := range kinds {
		m[info.name] = Kind(k)
	}
	for name, k := range kindAliases {
		m[name] = k
	}
	return m
}()

// Kinds returns all deficiency kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is one of the eight known kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

// String returns the lower-case name of k, e.g. "protanopia".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Title returns the display name of k, e.g. "Protanopia".
func (k Kind) Title() string {
	return cases.Title(language.English).String(k.String())
}

// Anomalous reports whether k is a partial ("-omaly") deficiency. It is the
// default anomalize flag of [NewRequest].
func (k Kind) Anomalous() bool {
	return k.Valid() && kinds[k].anomalous
}

// Achromatic reports whether k is simulated by grayscale conversion.
func (k Kind) Achromatic() bool {
	return k.Valid() && kinds[k].achromatic
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKind, k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind returns the kind with the given name, ignoring case.
// Besides the eight full names it accepts the family names "protan",
// "deutan", "tritan" and "achroma", which select the complete deficiency.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindsByName[cases.Fold().String(name)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
}
