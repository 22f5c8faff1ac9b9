package qubit

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

func Identity() Matrix {
	return Matrix{{1, 0}, {0, 1}}
}

func PauliX() Matrix {
	return Matrix{{0, 1}, {1, 0}}
}

func PauliY() Matrix {
	return Matrix{{0, -1i}, {1i, 0}}
}

func PauliZ() Matrix {
	return Matrix{{1, 0}, {0, -1}}
}

func Hadamard() Matrix {
	h := complex(1.0/math.Sqrt2, 0)
	return Matrix{{h, h}, {h, -h}}
}

// Phase is the S gate, diag(1, i).
func Phase() Matrix {
	return Matrix{{1, 0}, {0, 1i}}
}

func SDagger() Matrix {
	return Matrix{{1, 0}, {0, -1i}}
}

// TGate is diag(1, e^{iπ/4}).
func TGate() Matrix {
	return Matrix{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}
}

func TDagger() Matrix {
	return Matrix{{1, 0}, {0, cmplx.Exp(complex(0, -math.Pi/4))}}
}

// SqrtX squares to PauliX.
func SqrtX() Matrix {
	p := complex(0.5, 0.5)
	q := complex(0.5, -0.5)
	return Matrix{{p, q}, {q, p}}
}

func RotationX(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	return Matrix{{c, js}, {js, c}}
}

func RotationY(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Matrix{{c, -s}, {s, c}}
}

func RotationZ(theta float64) Matrix {
	phase := cmplx.Exp(complex(0, theta/2))
	return Matrix{{cmplx.Conj(phase), 0}, {0, phase}}
}

// PhaseShift is diag(1, e^{iλ}).
func PhaseShift(lambda float64) Matrix {
	return Matrix{{1, 0}, {0, cmplx.Exp(complex(0, lambda))}}
}

// U3 is the general single-qubit rotation in the OpenQASM convention.
func U3(theta, phi, lambda float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Matrix{
		{c, -cmplx.Exp(complex(0, lambda)) * s},
		{cmplx.Exp(complex(0, phi)) * s, cmplx.Exp(complex(0, phi+lambda)) * c},
	}
}

// Kind enumerates the gates the library can build.
type Kind int

const (
	KindIdentity Kind = iota
	KindPauliX
	KindPauliY
	KindPauliZ
	KindHadamard
	KindPhase
	KindT
	KindSDagger
	KindTDagger
	KindSqrtX
	KindRotationX
	KindRotationY
	KindRotationZ
	KindPhaseShift
	KindU3
	KindCustom
)

var kindNames = [...]string{
	KindIdentity:   "identity",
	KindPauliX:     "pauli_x",
	KindPauliY:     "pauli_y",
	KindPauliZ:     "pauli_z",
	KindHadamard:   "hadamard",
	KindPhase:      "phase",
	KindT:          "t",
	KindSDagger:    "s_dagger",
	KindTDagger:    "t_dagger",
	KindSqrtX:      "sqrt_x",
	KindRotationX:  "rotation_x",
	KindRotationY:  "rotation_y",
	KindRotationZ:  "rotation_z",
	KindPhaseShift: "phase_shift",
	KindU3:         "u3",
	KindCustom:     "custom",
}

// aliases accepted by ParseKind in addition to the canonical names.
var kindAliases = map[string]Kind{
	"t_gate": KindT,
	"s":      KindPhase,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Parameterized reports whether the kind reads angle parameters.
func (k Kind) Parameterized() bool {
	switch k {
	case KindRotationX, KindRotationY, KindRotationZ, KindPhaseShift, KindU3:
		return true
	}
	return false
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind maps a case-insensitive gate name to its kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, kn := range kindNames {
		if kn == n {
			return Kind(i), nil
		}
	}
	if k, ok := kindAliases[n]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGate, name)
}

// Gate is a gate kind together with its typed parameters. Theta is used by
// the rotations, PhaseShift (as λ) and U3; Phi and Lambda only by U3; Custom
// only by KindCustom.
type Gate struct {
	Kind   Kind
	Theta  float64
	Phi    float64
	Lambda float64
	Custom Matrix
}

// Matrix builds the gate's matrix. Only custom gates can fail.
func (g Gate) Matrix() (Matrix, error) {
	switch g.Kind {
	case KindIdentity:
		return Identity(), nil
	case KindPauliX:
		return PauliX(), nil
	case KindPauliY:
		return PauliY(), nil
	case KindPauliZ:
		return PauliZ(), nil
	case KindHadamard:
		return Hadamard(), nil
	case KindPhase:
		return Phase(), nil
	case KindT:
		return TGate(), nil
	case KindSDagger:
		return SDagger(), nil
	case KindTDagger:
		return TDagger(), nil
	case KindSqrtX:
		return SqrtX(), nil
	case KindRotationX:
		return RotationX(g.Theta), nil
	case KindRotationY:
		return RotationY(g.Theta), nil
	case KindRotationZ:
		return RotationZ(g.Theta), nil
	case KindPhaseShift:
		return PhaseShift(g.Theta), nil
	case KindU3:
		return U3(g.Theta, g.Phi, g.Lambda), nil
	case KindCustom:
		return ValidateUnitary(g.Custom)
	default:
		return Matrix{}, fmt.Errorf("%w: %v", ErrUnknownGate, g.Kind)
	}
}

func (g Gate) String() string {
	switch g.Kind {
	case KindRotationX, KindRotationY, KindRotationZ, KindPhaseShift:
		return fmt.Sprintf("%s(%g)", g.Kind, g.Theta)
	case KindU3:
		return fmt.Sprintf("%s(%g,%g,%g)", g.Kind, g.Theta, g.Phi, g.Lambda)
	default:
		return g.Kind.String()
	}
}

// Params carries the optional arguments of a gate requested by name.
// Missing angles default to 0. Matrix is only read for "custom".
type Params struct {
	Theta  float64
	Phi    float64
	Lambda float64
	Matrix [][]any
}

// NewGate builds the typed variant for a raw gate name.
func NewGate(name string, p Params) (Gate, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return Gate{}, err
	}
	g := Gate{Kind: kind, Theta: p.Theta, Phi: p.Phi, Lambda: p.Lambda}
	if kind == KindCustom {
		m, err := CustomGate(p.Matrix)
		if err != nil {
			return Gate{}, err
		}
		g.Custom = m
	}
	return g, nil
}

// Resolve maps a gate name plus parameters to a validated matrix.
func Resolve(name string, p Params) (Matrix, error) {
	g, err := NewGate(name, p)
	if err != nil {
		return Matrix{}, err
	}
	return g.Matrix()
}
