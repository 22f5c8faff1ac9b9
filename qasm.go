package main

import (
	"fmt"
	"os"
	"strings"

	"qtermbloch/internal/qubit"
)

// stateQASM generates a QASM 2.0 program that prepares the state with Bloch
// angles (theta, phi) from |0⟩, up to a global phase.
func stateQASM(a qubit.Amplitudes, theta, phi float64) string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	sb.WriteString("qreg q[1];\n\n")
	fmt.Fprintf(&sb, "// alpha = %s, beta = %s\n", formatAmplitude(a.Alpha), formatAmplitude(a.Beta))
	fmt.Fprintf(&sb, "u3(%s,%s,0) q[0];\n", formatParam(theta), formatParam(phi))
	return sb.String()
}

// exportQASM writes the preparation program for the engine's current state.
func (m *Model) exportQASM() error {
	theta, phi := m.engine.BlochAngles()
	qasm := stateQASM(m.engine.StateVector(), theta, phi)
	if err := os.WriteFile(m.qasmPath, []byte(qasm), 0644); err != nil {
		return fmt.Errorf("export qasm: %w", err)
	}
	return nil
}
