package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return string([]rune(s)[:width])
	}
	total := width - n
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// angleLabel shows an angle in pi notation when it is a common fraction,
// otherwise in radians.
func angleLabel(v float64) string {
	if s := formatParam(v); strings.Contains(s, "pi") {
		return fmt.Sprintf("%s (%.4f)", s, v)
	}
	return fmt.Sprintf("%.4f", v)
}

func yesNo(ok bool) string {
	if ok {
		return gateStyle.Render("yes")
	}
	return dimStyle.Render("no")
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderSpherePanel renders the Bloch sphere with the current state vector.
func (m Model) renderSpherePanel() string {
	x, y, z := m.engine.BlochVector()
	view := blochView{
		vector:    vec3{x, y, z},
		azimuth:   m.viewAz,
		elevation: m.viewEl,
		radius:    sphereRadius,
	}
	w, _ := view.size()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(padCenter("Bloch Sphere", w)))
	sb.WriteString("\n")
	sb.WriteString(view.render())
	return sphereStyle.Render(sb.String())
}

// renderStatePanel renders amplitudes, angles, history and the saved names.
func (m Model) renderStatePanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Qubit State"))
	sb.WriteString("\n\n")

	a := m.engine.StateVector()
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("α ="), formatAmplitude(a.Alpha))
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("β ="), formatAmplitude(a.Beta))

	p0, p1 := m.engine.Probabilities()
	fmt.Fprintf(&sb, "%s %.4f   %s %.4f\n\n", labelStyle.Render("P(0)"), p0, labelStyle.Render("P(1)"), p1)

	theta, phi := m.engine.BlochAngles()
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("θ ="), angleLabel(theta))
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("φ ="), angleLabel(phi))
	x, y, z := m.engine.BlochVector()
	fmt.Fprintf(&sb, "%s (%.3f, %.3f, %.3f)\n\n", labelStyle.Render("r ="), x, y, z)

	fmt.Fprintf(&sb, "Undo: %s   Redo: %s\n", yesNo(m.engine.CanUndo()), yesNo(m.engine.CanRedo()))

	saved := m.engine.SavedStates()
	if len(saved) == 0 {
		sb.WriteString(dimStyle.Render("No saved states"))
	} else {
		sb.WriteString("Saved: ")
		sb.WriteString(activeGateStyle.Render(strings.Join(saved, ", ")))
	}
	sb.WriteString("\n")

	if m.statusMsg != "" {
		sb.WriteString("\n")
		if m.statusErr {
			sb.WriteString(errorStyle.Render(m.statusMsg))
		} else {
			sb.WriteString(activeGateStyle.Render(m.statusMsg))
		}
	}

	return stateStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help/controls bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(activeGateStyle.Render("Gates:   "))
	sb.WriteString("a Menu  h/x/y/z/t Quick  c Custom matrix  r Reset preset")
	sb.WriteString("\n")

	sb.WriteString(activeGateStyle.Render("Actions: "))
	sb.WriteString("u Undo  ^R Redo  s Save  l Load  ^S Export QASM  ←→↑↓ Rotate view  q/^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}

// renderInput renders a prompt overlay around the shared text input.
func (m Model) renderInput(title, hint string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render(hint))
	return menuBorderStyle.Render(sb.String())
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sphere := m.renderSpherePanel()
	stateW := max(m.width-lipgloss.Width(sphere)-4, stateColumnW)
	state := m.renderStatePanel(stateW, lipgloss.Height(sphere)-2)
	controls := m.renderControlsPanel(m.width-4, controlsH-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, sphere, state)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, controls)

	var overlay string
	switch m.focus {
	case focusGateMenu:
		overlay = m.renderMenu()
	case focusPresetMenu:
		overlay = m.renderPresetMenu()
	case focusInputParam:
		overlay = m.renderInput("Enter Parameters: "+m.pending.name, "Examples: pi/2, 3*pi/4, 1.57  (U3: theta,phi,lambda)")
	case focusInputMatrix:
		overlay = m.renderInput("Custom Matrix", "Rows with ;  entries with ,  e.g. 0, 1; 1, 0  or  1/sqrt2, 1/sqrt2; 1/sqrt2, -1/sqrt2")
	case focusInputSave:
		overlay = m.renderInput("Save State", "Duplicate names get a _1, _2 ... suffix")
	case focusInputLoad:
		hint := "No saved states"
		if names := m.engine.SavedStates(); len(names) > 0 {
			hint = "Tab completes: " + strings.Join(names, ", ")
		}
		overlay = m.renderInput("Load State", hint)
	}
	if overlay != "" {
		frame = overlayAt(frame, overlay, 2, 2)
	}

	return frame
}

// ──────────────────────────── Overlay helpers ────────────────────────────

// overlayAt composites the overlay string on top of the background at position (x, y).
// It handles ANSI escape sequences by tracking visible column positions.
func overlayAt(bg, overlay string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	ovLines := strings.Split(overlay, "\n")

	for i, ovLine := range ovLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}
		bgLines[bgIdx] = spliceLineAt(bgLines[bgIdx], ovLine, x)
	}
	return strings.Join(bgLines, "\n")
}

// isEscEnd reports whether r terminates a CSI escape sequence.
func isEscEnd(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// spliceLineAt replaces visible columns starting at position x in bgLine with overlay content.
// Escape sequences in the background are copied through, never counted.
func spliceLineAt(bgLine, overlay string, x int) string {
	runes := []rune(bgLine)
	ovWidth := visibleLen(overlay)

	var prefix strings.Builder
	col, i := 0, 0

	// Everything up to visible column x
	for i < len(runes) && col < x {
		if runes[i] == '\x1b' {
			for i < len(runes) {
				prefix.WriteRune(runes[i])
				i++
				if isEscEnd(runes[i-1]) {
					break
				}
			}
			continue
		}
		prefix.WriteRune(runes[i])
		col++
		i++
	}
	for ; col < x; col++ {
		prefix.WriteRune(' ')
	}

	// Skip ovWidth visible columns of the background
	for skipped := 0; i < len(runes) && skipped < ovWidth; {
		if runes[i] == '\x1b' {
			for i < len(runes) {
				i++
				if isEscEnd(runes[i-1]) {
					break
				}
			}
			continue
		}
		skipped++
		i++
	}

	return prefix.String() + overlay + string(runes[i:])
}

// visibleLen returns the number of visible (non-ANSI-escape) characters in a string.
func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			continue
		}
		if inEsc {
			if isEscEnd(r) {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}
