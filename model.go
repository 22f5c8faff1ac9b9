package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"qtermbloch/internal/qubit"
	"qtermbloch/internal/sim"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusMain focus = iota
	focusGateMenu
	focusPresetMenu
	focusInputParam
	focusInputMatrix
	focusInputSave
	focusInputLoad
)

const (
	viewStep    = math.Pi / 12
	maxElevSpan = 4 * math.Pi / 9
)

// Model represents the TUI application state.
type Model struct {
	engine   *sim.Engine
	logger   *zap.Logger
	qasmPath string

	width     int
	height    int
	focus     focus
	statusMsg string // transient status message (e.g. save confirmation)
	statusErr bool

	// Menu state
	menuCat   int
	menuItem  int
	presetIdx int

	// Gate waiting for its parameters
	pending menuItem

	input textinput.Model

	// Camera angles of the sphere view, in radians
	viewAz float64
	viewEl float64
}

func initialModel(engine *sim.Engine, logger *zap.Logger, qasmPath string) Model {
	ti := textinput.New()
	ti.Width = 48
	ti.CharLimit = 256

	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		engine:   engine,
		logger:   logger,
		qasmPath: qasmPath,
		focus:    focusMain,
		input:    ti,
		viewAz:   math.Pi / 6,
		viewEl:   math.Pi / 9,
	}
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusMain:
			return m.updateMain(key)
		case focusGateMenu:
			m.updateGateMenu(key)
			return m, nil
		case focusPresetMenu:
			m.updatePresetMenu(key)
			return m, nil
		default:
			return m.updateInput(msg)
		}
	}

	return m, nil
}

func (m Model) updateMain(key string) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.statusErr = false

	if kind, ok := quickGates[key]; ok {
		m.applyGate(qubit.Gate{Kind: kind})
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "a":
		m.focus = focusGateMenu
		m.menuCat = 0
		m.menuItem = 0
	case "r":
		m.focus = focusPresetMenu
		m.presetIdx = 0
	case "c":
		m.pending = gateMenu[len(gateMenu)-1].items[0]
		m.openInput(focusInputMatrix, "0, 1; 1, 0")
	case "s":
		m.openInput(focusInputSave, "name")
	case "l":
		m.openInput(focusInputLoad, "name")
	case "u":
		m.report("undo", m.engine.Undo(), "Undone")
	case "ctrl+r":
		m.report("redo", m.engine.Redo(), "Redone")
	case "ctrl+s":
		m.report("export", m.exportQASM(), "Exported "+m.qasmPath)
	case "left":
		m.viewAz -= viewStep
	case "right":
		m.viewAz += viewStep
	case "up":
		m.viewEl = min(m.viewEl+viewStep, maxElevSpan)
	case "down":
		m.viewEl = max(m.viewEl-viewStep, -maxElevSpan)
	}
	return m, nil
}

func (m *Model) updateGateMenu(key string) {
	switch key {
	case "esc":
		m.focus = focusMain
	case "up", "k":
		if m.menuItem > 0 {
			m.menuItem--
		}
	case "down", "j":
		if m.menuItem < len(gateMenu[m.menuCat].items)-1 {
			m.menuItem++
		}
	case "left", "h":
		if m.menuCat > 0 {
			m.menuCat--
			m.menuItem = 0
		}
	case "right", "l":
		if m.menuCat < len(gateMenu)-1 {
			m.menuCat++
			m.menuItem = 0
		}
	case "enter":
		item := gateMenu[m.menuCat].items[m.menuItem]
		m.pending = item
		switch {
		case item.kind == qubit.KindCustom:
			m.openInput(focusInputMatrix, item.paramHint)
		case item.kind.Parameterized():
			m.openInput(focusInputParam, item.paramHint)
		default:
			m.focus = focusMain
			m.applyGate(qubit.Gate{Kind: item.kind})
		}
	}
}

func (m *Model) updatePresetMenu(key string) {
	presets := qubit.Presets()
	switch key {
	case "esc":
		m.focus = focusMain
	case "up", "k":
		if m.presetIdx > 0 {
			m.presetIdx--
		}
	case "down", "j":
		if m.presetIdx < len(presets)-1 {
			m.presetIdx++
		}
	case "enter":
		name := presets[m.presetIdx]
		m.focus = focusMain
		m.report("reset", m.engine.Reset(name), fmt.Sprintf("Reset to %s", presetLabels[name]), zap.String("preset", name))
	}
}

// updateInput handles the prompt overlays. Keys other than esc, enter and
// tab go to the text input.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		m.submitInput(strings.TrimSpace(m.input.Value()))
		return m, nil
	case "tab":
		if m.focus == focusInputLoad {
			m.completeLoadName()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) openInput(f focus, placeholder string) {
	m.focus = f
	m.statusMsg = ""
	m.statusErr = false
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.Focus()
}

func (m *Model) closeInput() {
	m.input.Blur()
	m.input.Reset()
	m.focus = focusMain
	m.pending = menuItem{}
}

// submitInput acts on the prompt text. Rejected input keeps the prompt open
// so it can be corrected.
func (m *Model) submitInput(value string) {
	switch m.focus {
	case focusInputParam:
		params := parseParams(value)
		if value != "" && params == nil {
			m.fail("parse", errors.New("invalid parameter: use numbers or pi expressions (e.g. pi/2, 3*pi/4)"))
			return
		}
		if m.applyGate(gateFromParams(m.pending.kind, params)) {
			m.closeInput()
		}

	case focusInputMatrix:
		rows, err := parseMatrixExpr(value)
		if err != nil {
			m.fail("parse", err)
			return
		}
		err = m.engine.ApplyNamed(qubit.KindCustom.String(), qubit.Params{Matrix: rows})
		if m.report("apply", err, "Applied custom matrix", zap.String("matrix", value)) {
			m.closeInput()
		}

	case focusInputSave:
		if value == "" {
			m.fail("save", errors.New("name must not be empty"))
			return
		}
		stored := m.engine.SaveState(value)
		m.closeInput()
		m.succeed("save", fmt.Sprintf("Saved as %s", stored), zap.String("name", stored))

	case focusInputLoad:
		if m.report("load", m.engine.LoadState(value), "Loaded "+value, zap.String("name", value)) {
			m.closeInput()
		}
	}
}

// completeLoadName fills in the first saved name starting with the typed text.
func (m *Model) completeLoadName() {
	prefix := m.input.Value()
	for _, name := range m.engine.SavedStates() {
		if strings.HasPrefix(name, prefix) {
			m.input.SetValue(name)
			m.input.CursorEnd()
			return
		}
	}
}

func (m *Model) applyGate(g qubit.Gate) bool {
	return m.report("apply", m.engine.ApplyGate(g), "Applied "+g.String(), zap.Stringer("gate", g))
}

// report shows the outcome of an engine call in the status line. An empty
// undo or redo stack is not an error, just nothing to do.
func (m *Model) report(action string, err error, okMsg string, fields ...zap.Field) bool {
	switch {
	case err == nil:
		m.succeed(action, okMsg, fields...)
		return true
	case errors.Is(err, sim.ErrEmptyHistory):
		m.statusMsg, m.statusErr = "Nothing to undo", false
	case errors.Is(err, sim.ErrEmptyRedo):
		m.statusMsg, m.statusErr = "Nothing to redo", false
	default:
		m.fail(action, err, fields...)
	}
	return false
}

func (m *Model) succeed(action, msg string, fields ...zap.Field) {
	m.statusMsg, m.statusErr = msg, false
	m.logger.Info(action, fields...)
}

func (m *Model) fail(action string, err error, fields ...zap.Field) {
	m.statusMsg, m.statusErr = err.Error(), true
	m.logger.Warn(action+" rejected", append(fields, zap.Error(err))...)
}
