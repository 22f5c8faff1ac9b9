package qubit

import (
	"fmt"
	"math"
)

const invSqrt2 = 1 / math.Sqrt2

type preset struct {
	name string
	amps Amplitudes
}

// presets is ordered for display.
var presets = []preset{
	{"zero", Amplitudes{1, 0}},
	{"one", Amplitudes{0, 1}},
	{"plus", Amplitudes{invSqrt2, invSqrt2}},
	{"minus", Amplitudes{invSqrt2, -invSqrt2}},
	{"i_plus", Amplitudes{invSqrt2, complex(0, invSqrt2)}},
	{"i_minus", Amplitudes{invSqrt2, complex(0, -invSqrt2)}},
}

// Presets returns the preset names in display order.
func Presets() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}

// PresetAmplitudes looks up a preset's normalized amplitude pair.
func PresetAmplitudes(name string) (Amplitudes, error) {
	for _, p := range presets {
		if p.name == name {
			return p.amps, nil
		}
	}
	return Amplitudes{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
