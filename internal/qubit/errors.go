package qubit

import "errors"

// Validation errors returned by gate construction and state mutation.
var (
	// ErrUnknownGate indicates a gate name that maps to no constructor.
	ErrUnknownGate = errors.New("qubit: unknown gate")

	// ErrInvalidMatrixShape indicates a custom matrix that is not exactly 2x2.
	ErrInvalidMatrixShape = errors.New("qubit: custom gate matrix must be 2x2")

	// ErrInvalidMatrixValue indicates a matrix entry that is not a finite number.
	ErrInvalidMatrixValue = errors.New("qubit: invalid matrix value")

	// ErrNotUnitary indicates a matrix with M†M deviating from the identity.
	ErrNotUnitary = errors.New("qubit: custom gate matrix must be unitary")

	// ErrUnknownPreset indicates a preset name outside the fixed preset table.
	ErrUnknownPreset = errors.New("qubit: unknown preset")

	// ErrZeroNormState indicates an amplitude pair that cannot be normalized.
	ErrZeroNormState = errors.New("qubit: state has zero norm")
)
