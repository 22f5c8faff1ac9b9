package main

import (
	"fmt"
	"strings"

	"qtermbloch/internal/qubit"
)

// menuItem represents a single gate choice in the menu.
type menuItem struct {
	name      string
	kind      qubit.Kind
	symbol    string
	paramHint string // non-empty when the gate takes angles
}

// menuCategory groups related menu items under a tab.
type menuCategory struct {
	name  string
	items []menuItem
}

// gateMenu defines the gate picker categories and items.
var gateMenu = []menuCategory{
	{
		name: "Fixed",
		items: []menuItem{
			{name: "Hadamard", kind: qubit.KindHadamard, symbol: "H"},
			{name: "Pauli-X (NOT)", kind: qubit.KindPauliX, symbol: "X"},
			{name: "Pauli-Y", kind: qubit.KindPauliY, symbol: "Y"},
			{name: "Pauli-Z", kind: qubit.KindPauliZ, symbol: "Z"},
			{name: "Identity", kind: qubit.KindIdentity, symbol: "I"},
			{name: "Phase (S)", kind: qubit.KindPhase, symbol: "S"},
			{name: "Phase Dagger (S†)", kind: qubit.KindSDagger, symbol: "S†"},
			{name: "T Gate", kind: qubit.KindT, symbol: "T"},
			{name: "T Dagger (T†)", kind: qubit.KindTDagger, symbol: "T†"},
			{name: "√X (SX)", kind: qubit.KindSqrtX, symbol: "√X"},
		},
	},
	{
		name: "Rotation",
		items: []menuItem{
			{name: "Rotate X", kind: qubit.KindRotationX, symbol: "RX", paramHint: "pi/2"},
			{name: "Rotate Y", kind: qubit.KindRotationY, symbol: "RY", paramHint: "pi/2"},
			{name: "Rotate Z", kind: qubit.KindRotationZ, symbol: "RZ", paramHint: "pi/2"},
			{name: "Phase Shift", kind: qubit.KindPhaseShift, symbol: "P", paramHint: "pi/4"},
			{name: "Universal U3", kind: qubit.KindU3, symbol: "U3", paramHint: "theta,phi,lambda"},
		},
	},
	{
		name: "Custom",
		items: []menuItem{
			{name: "Matrix", kind: qubit.KindCustom, symbol: "[U]", paramHint: "a, b; c, d"},
		},
	},
}

// presetLabels are shown next to the preset names in the reset picker.
var presetLabels = map[string]string{
	"zero":    "|0⟩",
	"one":     "|1⟩",
	"plus":    "|+⟩",
	"minus":   "|−⟩",
	"i_plus":  "|+i⟩",
	"i_minus": "|−i⟩",
}

// quickGates maps single keys on the main view to fixed gates.
var quickGates = map[string]qubit.Kind{
	"h": qubit.KindHadamard,
	"x": qubit.KindPauliX,
	"y": qubit.KindPauliY,
	"z": qubit.KindPauliZ,
	"t": qubit.KindT,
}

// gateFromParams builds the gate for kind from parsed angle values. Missing
// values default to 0.
func gateFromParams(kind qubit.Kind, params []float64) qubit.Gate {
	g := qubit.Gate{Kind: kind}
	at := func(i int) float64 {
		if i < len(params) {
			return params[i]
		}
		return 0
	}
	g.Theta = at(0)
	if kind == qubit.KindU3 {
		g.Phi, g.Lambda = at(1), at(2)
	}
	return g
}

// renderMenu renders the floating gate-picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Apply Gate"))
	sb.WriteString("\n")

	// Category tabs
	for i, cat := range gateMenu {
		name := " " + cat.name + " "
		if i == m.menuCat {
			sb.WriteString(activeGateStyle.Render(name))
		} else {
			sb.WriteString(dimStyle.Render(name))
		}
		if i < len(gateMenu)-1 {
			sb.WriteString(dimStyle.Render("│"))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 36)))
	sb.WriteString("\n")

	cat := gateMenu[m.menuCat]
	for i, item := range cat.items {
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%-18s", item.name)))
			sb.WriteString(gateStyle.Render(item.symbol))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("%-18s", item.name)))
			sb.WriteString(dimStyle.Render(item.symbol))
		}
		if item.paramHint != "" {
			sb.WriteString(dimStyle.Render(fmt.Sprintf(" (%s)", item.paramHint)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ←→ Cat  ⏎ Ok  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}

// renderPresetMenu renders the reset-to-preset popup.
func (m Model) renderPresetMenu() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Reset State"))
	sb.WriteString("\n\n")
	for i, name := range qubit.Presets() {
		line := fmt.Sprintf("%-5s %s", presetLabels[name], name)
		if i == m.presetIdx {
			sb.WriteString(menuSelectedStyle.Render(" ▸ " + line))
		} else {
			sb.WriteString("   " + menuNormalStyle.Render(line))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ⏎ Ok  Esc ✕"))
	return menuBorderStyle.Render(sb.String())
}
