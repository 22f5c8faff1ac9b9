package main

import (
	"math"
	"math/cmplx"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"qtermbloch/internal/qubit"
	"qtermbloch/internal/sim"
)

var specialKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"tab":    tea.KeyTab,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"ctrl+c": tea.KeyCtrlC,
	"ctrl+r": tea.KeyCtrlR,
	"ctrl+s": tea.KeyCtrlS,
}

func keyMsg(key string) tea.KeyMsg {
	if k, ok := specialKeys[key]; ok {
		return tea.KeyMsg{Type: k}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func newTestModel(t *testing.T, qasmPath string) Model {
	t.Helper()
	e, err := sim.New()
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	return initialModel(e, nil, qasmPath)
}

// press sends each key in turn through Update.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

// typeText sends s as a single run of runes, the way a paste arrives.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func assertState(t *testing.T, m Model, alpha, beta complex128) {
	t.Helper()
	a := m.engine.StateVector()
	if cmplx.Abs(a.Alpha-alpha) > 1e-4 || cmplx.Abs(a.Beta-beta) > 1e-4 {
		t.Errorf("state = (%v, %v), want (%v, %v)", a.Alpha, a.Beta, alpha, beta)
	}
}

func TestQuickGateAndUndo(t *testing.T) {
	h := complex(1/math.Sqrt2, 0)
	m := newTestModel(t, "")

	m = press(t, m, "u")
	if m.statusMsg != "Nothing to undo" || m.statusErr {
		t.Errorf("undo on empty history: status = %q (err=%v)", m.statusMsg, m.statusErr)
	}

	m = press(t, m, "h")
	assertState(t, m, h, h)
	if m.statusMsg != "Applied hadamard" {
		t.Errorf("status = %q, want %q", m.statusMsg, "Applied hadamard")
	}

	m = press(t, m, "z")
	assertState(t, m, h, -h)

	m = press(t, m, "u", "u")
	assertState(t, m, 1, 0)

	m = press(t, m, "ctrl+r")
	assertState(t, m, h, h)
	m = press(t, m, "ctrl+r", "ctrl+r")
	if m.statusMsg != "Nothing to redo" || m.statusErr {
		t.Errorf("redo on empty stack: status = %q (err=%v)", m.statusMsg, m.statusErr)
	}
	assertState(t, m, h, -h)
}

func TestGateMenuParameterizedGate(t *testing.T) {
	m := newTestModel(t, "")
	m = press(t, m, "a")
	if m.focus != focusGateMenu {
		t.Fatalf("focus = %v, want gate menu", m.focus)
	}
	m = press(t, m, "right", "enter")
	if m.focus != focusInputParam || m.pending.kind != qubit.KindRotationX {
		t.Fatalf("focus = %v pending = %v, want rotation_x parameter prompt", m.focus, m.pending.kind)
	}

	m = typeText(t, m, "abc")
	m = press(t, m, "enter")
	if m.focus != focusInputParam || !m.statusErr {
		t.Errorf("bad parameter: focus = %v status = %q, want prompt kept with an error", m.focus, m.statusMsg)
	}
	assertState(t, m, 1, 0)

	m = press(t, m, "esc", "a", "right", "enter")
	m = typeText(t, m, "pi")
	m = press(t, m, "enter")
	if m.focus != focusMain {
		t.Errorf("focus = %v after applying, want main", m.focus)
	}
	assertState(t, m, 0, -1i)
}

func TestGateMenuU3DefaultsMissingParams(t *testing.T) {
	m := newTestModel(t, "")
	// Rotation tab, fifth item is U3.
	m = press(t, m, "a", "right", "down", "down", "down", "down", "enter")
	if m.pending.kind != qubit.KindU3 {
		t.Fatalf("pending = %v, want u3", m.pending.kind)
	}
	m = typeText(t, m, "pi")
	m = press(t, m, "enter")
	assertState(t, m, 0, 1)
}

func TestGateMenuFixedGate(t *testing.T) {
	m := newTestModel(t, "")
	m = press(t, m, "a", "down", "enter") // Pauli-X
	if m.focus != focusMain {
		t.Errorf("focus = %v, want main", m.focus)
	}
	assertState(t, m, 0, 1)

	m = press(t, m, "a", "esc")
	if m.focus != focusMain {
		t.Errorf("esc left focus at %v", m.focus)
	}
}

func TestCustomMatrixInput(t *testing.T) {
	m := newTestModel(t, "")
	m = press(t, m, "c")
	if m.focus != focusInputMatrix {
		t.Fatalf("focus = %v, want matrix prompt", m.focus)
	}

	m = typeText(t, m, "1, 1; 1, 1")
	m = press(t, m, "enter")
	if m.focus != focusInputMatrix || !m.statusErr || !strings.Contains(m.statusMsg, "unitary") {
		t.Errorf("non-unitary: focus = %v status = %q", m.focus, m.statusMsg)
	}
	assertState(t, m, 1, 0)
	if m.engine.CanUndo() {
		t.Error("rejected matrix was recorded in history")
	}

	m = press(t, m, "esc", "c")
	m = typeText(t, m, "1, 0; 0, bogus")
	m = press(t, m, "enter")
	if !m.statusErr || !strings.Contains(m.statusMsg, "row 2, column 2") {
		t.Errorf("parse error status = %q", m.statusMsg)
	}

	m = press(t, m, "esc", "c")
	m = typeText(t, m, "0, -i; i, 0")
	m = press(t, m, "enter")
	if m.focus != focusMain || m.statusErr {
		t.Errorf("valid matrix: focus = %v status = %q", m.focus, m.statusMsg)
	}
	assertState(t, m, 0, 1i)
}

func TestPresetMenu(t *testing.T) {
	h := complex(1/math.Sqrt2, 0)
	m := newTestModel(t, "")
	m = press(t, m, "r", "down", "down", "enter")
	assertState(t, m, h, h)
	if m.statusMsg != "Reset to |+⟩" {
		t.Errorf("status = %q", m.statusMsg)
	}
	m = press(t, m, "u")
	assertState(t, m, 1, 0)
}

func TestSaveAndLoad(t *testing.T) {
	m := newTestModel(t, "")

	m = press(t, m, "s")
	m = typeText(t, m, "foo")
	m = press(t, m, "enter")
	if m.statusMsg != "Saved as foo" {
		t.Errorf("status = %q, want %q", m.statusMsg, "Saved as foo")
	}

	m = press(t, m, "s")
	m = typeText(t, m, "foo")
	m = press(t, m, "enter")
	if m.statusMsg != "Saved as foo_1" {
		t.Errorf("status = %q, want %q", m.statusMsg, "Saved as foo_1")
	}

	m = press(t, m, "s", "enter")
	if m.focus != focusInputSave || !m.statusErr {
		t.Errorf("empty name accepted: focus = %v status = %q", m.focus, m.statusMsg)
	}
	m = press(t, m, "esc")

	m = press(t, m, "x")
	assertState(t, m, 0, 1)

	m = press(t, m, "l")
	m = typeText(t, m, "nope")
	m = press(t, m, "enter")
	if m.focus != focusInputLoad || !m.statusErr {
		t.Errorf("unknown name: focus = %v status = %q", m.focus, m.statusMsg)
	}
	assertState(t, m, 0, 1)

	m = press(t, m, "esc", "l")
	m = typeText(t, m, "f")
	m = press(t, m, "tab")
	if got := m.input.Value(); got != "foo" {
		t.Errorf("tab completion = %q, want foo", got)
	}
	m = press(t, m, "enter")
	assertState(t, m, 1, 0)

	m = press(t, m, "u")
	assertState(t, m, 0, 1)
}

func TestRotateView(t *testing.T) {
	m := newTestModel(t, "")
	az := m.viewAz
	m = press(t, m, "right")
	if math.Abs(m.viewAz-az-viewStep) > 1e-12 {
		t.Errorf("viewAz = %g, want %g", m.viewAz, az+viewStep)
	}
	for range 20 {
		m = press(t, m, "up")
	}
	if m.viewEl != maxElevSpan {
		t.Errorf("viewEl = %g, want clamp at %g", m.viewEl, maxElevSpan)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, "")
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", k)
		}
	}

	// q inside a prompt is text, ctrl+c still quits.
	m = press(t, m, "s", "q")
	if m.focus != focusInputSave || m.input.Value() != "q" {
		t.Errorf("q in prompt: focus = %v value = %q", m.focus, m.input.Value())
	}
}

func TestViewRendersPanels(t *testing.T) {
	m := newTestModel(t, "")
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before size = %q", got)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	m = press(t, m, "h")

	out := m.View()
	for _, want := range []string{"Bloch Sphere", "Qubit State", "0.7071", "pi/2", "Applied hadamard"} {
		if !strings.Contains(out, want) {
			t.Errorf("View is missing %q", want)
		}
	}

	m = press(t, m, "a")
	if out := m.View(); !strings.Contains(out, "Apply Gate") {
		t.Error("gate menu overlay not rendered")
	}
}

func TestModelLogsActions(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e, err := sim.New()
	if err != nil {
		t.Fatal(err)
	}
	m := initialModel(e, zap.New(core), "")

	m = press(t, m, "h", "a", "right", "enter")
	m = typeText(t, m, "what")
	m = press(t, m, "enter")

	if n := logs.FilterMessage("apply").Len(); n != 1 {
		t.Errorf("got %d apply entries, want 1", n)
	}
	rejected := logs.FilterMessage("parse rejected").All()
	if len(rejected) != 1 || rejected[0].Level != zap.WarnLevel {
		t.Errorf("parse rejected entries = %v, want one at warn", rejected)
	}
}
