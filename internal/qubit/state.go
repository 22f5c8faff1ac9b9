package qubit

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ZeroNormTolerance is the norm below which a pair counts as the zero vector.
const ZeroNormTolerance = 1e-12

// PhaseEpsilon is the |β| at or below which φ is reported as 0.
const PhaseEpsilon = 1e-12

// State holds a normalized single-qubit amplitude pair.
type State struct {
	amps Amplitudes
}

// NewZero returns a state prepared in |0⟩.
func NewZero() *State {
	return &State{amps: Amplitudes{Alpha: 1}}
}

// New returns the normalized state α|0⟩ + β|1⟩.
func New(alpha, beta Complex) (*State, error) {
	amps, err := normalize(Amplitudes{Alpha: alpha, Beta: beta})
	if err != nil {
		return nil, err
	}
	return &State{amps: amps}, nil
}

func (s *State) Clone() *State {
	return &State{amps: s.amps}
}

// Apply replaces the state with M·ψ, renormalized. The state is unchanged
// if the product cannot be normalized.
func (s *State) Apply(m Matrix) error {
	amps, err := normalize(m.Apply(s.amps))
	if err != nil {
		return err
	}
	s.amps = amps
	return nil
}

// Set assigns and normalizes a new amplitude pair.
func (s *State) Set(alpha, beta Complex) error {
	amps, err := normalize(Amplitudes{Alpha: alpha, Beta: beta})
	if err != nil {
		return err
	}
	s.amps = amps
	return nil
}

func (s *State) SetPreset(name string) error {
	amps, err := PresetAmplitudes(name)
	if err != nil {
		return err
	}
	return s.Set(amps.Alpha, amps.Beta)
}

// Restore assigns a snapshot taken from a valid state verbatim.
func (s *State) Restore(a Amplitudes) {
	s.amps = a
}

func (s *State) Vector() Amplitudes {
	return s.amps
}

// BlochAngles returns θ = 2·arccos|α| in [0, π] and φ = arg β − arg α.
// φ is 0 when |β| is at or below PhaseEpsilon.
func (s *State) BlochAngles() (theta, phi float64) {
	a := math.Min(cmplx.Abs(s.amps.Alpha), 1)
	theta = 2 * math.Acos(a)
	if cmplx.Abs(s.amps.Beta) > PhaseEpsilon {
		phi = cmplx.Phase(s.amps.Beta) - cmplx.Phase(s.amps.Alpha)
	}
	return theta, phi
}

// BlochVector returns the Cartesian point (x, y, z) on the unit sphere.
func (s *State) BlochVector() (x, y, z float64) {
	theta, phi := s.BlochAngles()
	st := math.Sin(theta)
	return st * math.Cos(phi), st * math.Sin(phi), math.Cos(theta)
}

// Probabilities returns |α|² and |β|².
func (s *State) Probabilities() (p0, p1 float64) {
	return norm2(s.amps.Alpha), norm2(s.amps.Beta)
}

func norm2(c Complex) float64 {
	return real(c * cmplx.Conj(c))
}

func normalize(a Amplitudes) (Amplitudes, error) {
	if !isFinite(a.Alpha) || !isFinite(a.Beta) {
		return Amplitudes{}, fmt.Errorf("%w: non-finite amplitude", ErrZeroNormState)
	}
	n := math.Sqrt(norm2(a.Alpha) + norm2(a.Beta))
	if n < ZeroNormTolerance {
		return Amplitudes{}, ErrZeroNormState
	}
	d := complex(n, 0)
	return Amplitudes{Alpha: a.Alpha / d, Beta: a.Beta / d}, nil
}
