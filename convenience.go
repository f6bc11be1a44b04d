package colorblind

// defaultSimulator uses the sRGB profile.
var defaultSimulator = mustNew()

func mustNew(opts ...Option) *Simulator {
	s, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the package-level sRGB simulator.
func Default() *Simulator {
	return defaultSimulator
}

// Protanopia simulates the absence of L cones.
func (s *Simulator) Protanopia(c RGB) RGB { return s.run(NewRequest(c, KindProtanopia)) }

// Protanomaly simulates anomalous L cones.
func (s *Simulator) Protanomaly(c RGB) RGB { return s.run(NewRequest(c, KindProtanomaly)) }

// Deuteranopia simulates the absence of M cones.
func (s *Simulator) Deuteranopia(c RGB) RGB { return s.run(NewRequest(c, KindDeuteranopia)) }

// Deuteranomaly simulates anomalous M cones.
func (s *Simulator) Deuteranomaly(c RGB) RGB { return s.run(NewRequest(c, KindDeuteranomaly)) }

// Tritanopia simulates the absence of S cones.
func (s *Simulator) Tritanopia(c RGB) RGB { return s.run(NewRequest(c, KindTritanopia)) }

// Tritanomaly simulates anomalous S cones.
func (s *Simulator) Tritanomaly(c RGB) RGB { return s.run(NewRequest(c, KindTritanomaly)) }

// Achromatopsia simulates total color blindness.
func (s *Simulator) Achromatopsia(c RGB) RGB { return s.run(NewRequest(c, KindAchromatopsia)) }

// Achromatomaly simulates partial color blindness.
func (s *Simulator) Achromatomaly(c RGB) RGB { return s.run(NewRequest(c, KindAchromatomaly)) }

// Simulate is [Simulator.Simulate] on the default simulator.
func Simulate(c RGB, k Kind) (RGB, error) { return defaultSimulator.Simulate(c, k) }

// Run is [Simulator.Run] on the default simulator.
func Run(req Request) (RGB, error) { return defaultSimulator.Run(req) }

// SimulateHex is [Simulator.SimulateHex] on the default simulator.
//
// Example:
//
//	s, err := colorblind.SimulateHex("#42dead", colorblind.KindProtanopia) // "#D2C5A1"
func SimulateHex(hex string, k Kind) (string, error) { return defaultSimulator.SimulateHex(hex, k) }

// Protanopia is [Simulator.Protanopia] on the default simulator.
func Protanopia(c RGB) RGB { return defaultSimulator.Protanopia(c) }

// Protanomaly is [Simulator.Protanomaly] on the default simulator.
func Protanomaly(c RGB) RGB { return defaultSimulator.Protanomaly(c) }

// Deuteranopia is [Simulator.Deuteranopia] on the default simulator.
func Deuteranopia(c RGB) RGB { return defaultSimulator.Deuteranopia(c) }

// Deuteranomaly is [Simulator.Deuteranomaly] on the default simulator.
func Deuteranomaly(c RGB) RGB { return defaultSimulator.Deuteranomaly(c) }

// Tritanopia is [Simulator.Tritanopia] on the default simulator.
func Tritanopia(c RGB) RGB { return defaultSimulator.Tritanopia(c) }

// Tritanomaly is [Simulator.Tritanomaly] on the default simulator.
func Tritanomaly(c RGB) RGB { return defaultSimulator.Tritanomaly(c) }

// Achromatopsia is [Simulator.Achromatopsia] on the default simulator.
func Achromatopsia(c RGB) RGB { return defaultSimulator.Achromatopsia(c) }

// Achromatomaly is [Simulator.Achromatomaly] on the default simulator.
func Achromatomaly(c RGB) RGB { return defaultSimulator.Achromatomaly(c) }
