package qubit

import (
	"fmt"
	"math/cmplx"
)

type Complex = complex128

// UnitaryTolerance is the largest entry of |M†M - I| accepted as unitary.
const UnitaryTolerance = 1e-8

// Matrix is a 2x2 complex matrix indexed [row][col].
type Matrix [2][2]Complex

// Amplitudes is the pair (α, β) of |ψ⟩ = α|0⟩ + β|1⟩.
type Amplitudes struct {
	Alpha Complex
	Beta  Complex
}

// Dagger returns the conjugate transpose of m.
func (m Matrix) Dagger() Matrix {
	return Matrix{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

// Mul returns the product m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for i := range 2 {
		for j := range 2 {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j]
		}
	}
	return r
}

// Apply returns the matrix-vector product M·[α, β]ᵗ without normalizing.
func (m Matrix) Apply(a Amplitudes) Amplitudes {
	return Amplitudes{
		Alpha: m[0][0]*a.Alpha + m[0][1]*a.Beta,
		Beta:  m[1][0]*a.Alpha + m[1][1]*a.Beta,
	}
}

// Equal reports whether every entry of m is within tol of o.
func (m Matrix) Equal(o Matrix, tol float64) bool {
	for i := range 2 {
		for j := range 2 {
			if cmplx.Abs(m[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// IsUnitary reports whether M†M equals the identity within tol, elementwise.
func (m Matrix) IsUnitary(tol float64) bool {
	return m.Dagger().Mul(m).Equal(Identity(), tol)
}

// ValidateUnitary returns ErrNotUnitary if m fails the unitary check.
func ValidateUnitary(m Matrix) (Matrix, error) {
	for i := range 2 {
		for j := range 2 {
			if !isFinite(m[i][j]) {
				return Matrix{}, fmt.Errorf("%w: entry [%d][%d] is %v", ErrInvalidMatrixValue, i, j, m[i][j])
			}
		}
	}
	if !m.IsUnitary(UnitaryTolerance) {
		return Matrix{}, ErrNotUnitary
	}
	return m, nil
}

// CustomGate validates a user-supplied 2x2 matrix whose entries may be any
// Go numeric type. The matrix is returned unchanged on success.
func CustomGate(rows [][]any) (Matrix, error) {
	if len(rows) != 2 {
		return Matrix{}, fmt.Errorf("%w: got %d rows", ErrInvalidMatrixShape, len(rows))
	}
	var m Matrix
	for i, row := range rows {
		if len(row) != 2 {
			return Matrix{}, fmt.Errorf("%w: row %d has %d entries", ErrInvalidMatrixShape, i, len(row))
		}
		for j, v := range row {
			c, ok := toComplex(v)
			if !ok {
				return Matrix{}, fmt.Errorf("%w: entry [%d][%d] is %T", ErrInvalidMatrixValue, i, j, v)
			}
			m[i][j] = c
		}
	}
	return ValidateUnitary(m)
}

// toComplex converts a numeric value of any built-in kind to complex128.
func toComplex(v any) (Complex, bool) {
	switch x := v.(type) {
	case complex128:
		return x, true
	case complex64:
		return complex128(x), true
	case float64:
		return complex(x, 0), true
	case float32:
		return complex(float64(x), 0), true
	case int:
		return complex(float64(x), 0), true
	case int8:
		return complex(float64(x), 0), true
	case int16:
		return complex(float64(x), 0), true
	case int32:
		return complex(float64(x), 0), true
	case int64:
		return complex(float64(x), 0), true
	case uint:
		return complex(float64(x), 0), true
	case uint8:
		return complex(float64(x), 0), true
	case uint16:
		return complex(float64(x), 0), true
	case uint32:
		return complex(float64(x), 0), true
	case uint64:
		return complex(float64(x), 0), true
	default:
		return 0, false
	}
}

func isFinite(c Complex) bool {
	return !cmplx.IsNaN(c) && !cmplx.IsInf(c)
}
