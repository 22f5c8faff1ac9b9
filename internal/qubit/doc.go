// Package qubit models a single two-level quantum state and the 2x2 unitary
// gates that act on it.
//
// Gates are built either from the closed Gate variant or resolved from a raw
// name with Resolve. User-supplied matrices pass through CustomGate, which
// rejects anything that is not a finite, unitary 2x2 matrix.
package qubit
