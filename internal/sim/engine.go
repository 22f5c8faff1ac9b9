// Package sim sequences every mutation of a single qubit through an
// undo/redo history and keeps a store of named states.
package sim

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"qtermbloch/internal/qubit"
)

var (
	// ErrUnknownSavedState indicates a load of a name that was never saved.
	ErrUnknownSavedState = errors.New("sim: no saved state with that name")

	// ErrEmptyHistory is returned by Undo when there is nothing to undo.
	ErrEmptyHistory = errors.New("sim: no more undos available")

	// ErrEmptyRedo is returned by Redo when there is nothing to redo.
	ErrEmptyRedo = errors.New("sim: no more redos available")
)

// Engine owns the current qubit state, its undo and redo stacks and the
// named-state store. All methods are safe for concurrent use.
type Engine struct {
	mu     sync.Mutex
	state  *qubit.State
	undo   history
	redo   history
	saved  *store
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithHistoryLimit bounds the undo and redo stacks to n snapshots each.
// Zero means unbounded.
func WithHistoryLimit(n int) Option {
	return func(e *Engine) error {
		if n < 0 {
			return fmt.Errorf("sim: history limit must not be negative, got %d", n)
		}
		e.undo.limit = n
		e.redo.limit = n
		return nil
	}
}

// WithLogger sets the logger used for committed edits. The default
// discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) error {
		if l != nil {
			e.logger = l
		}
		return nil
	}
}

// WithInitialPreset starts the engine in the named preset instead of |0⟩.
func WithInitialPreset(name string) Option {
	return func(e *Engine) error {
		return e.state.SetPreset(name)
	}
}

// New returns an engine in |0⟩ with empty history and an empty store.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		state:  qubit.NewZero(),
		saved:  newStore(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// ApplyGate applies g. If the gate fails validation the state and both
// stacks are left untouched.
func (e *Engine) ApplyGate(g qubit.Gate) error {
	m, err := g.Matrix()
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.edit("apply_gate", func() error { return e.state.Apply(m) }, zap.Stringer("gate", g))
}

// ApplyNamed resolves a raw gate name and applies it.
func (e *Engine) ApplyNamed(name string, p qubit.Params) error {
	g, err := qubit.NewGate(name, p)
	if err != nil {
		return err
	}
	return e.ApplyGate(g)
}

// Reset sets the state to a named preset as one undoable edit.
func (e *Engine) Reset(preset string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.edit("reset", func() error { return e.state.SetPreset(preset) }, zap.String("preset", preset))
}

// Undo restores the previous state. It returns ErrEmptyHistory, and does
// nothing, when there is no previous state.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	prev, ok := e.undo.pop()
	if !ok {
		return ErrEmptyHistory
	}
	e.redo.push(e.state.Vector())
	e.state.Restore(prev)
	e.logged("undo")
	return nil
}

// Redo re-applies the most recently undone state. It returns ErrEmptyRedo,
// and does nothing, when nothing has been undone since the last edit.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	next, ok := e.redo.pop()
	if !ok {
		return ErrEmptyRedo
	}
	e.undo.push(e.state.Vector())
	e.state.Restore(next)
	e.logged("redo")
	return nil
}

// SaveState stores the current state and returns the name it was stored
// under, which carries a _N suffix if name was already taken.
func (e *Engine) SaveState(name string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := e.saved.put(name, e.state.Vector())
	e.logger.Debug("saved state", zap.String("requested", name), zap.String("stored", key))
	return key
}

// LoadState replaces the current state with a saved one as an undoable
// edit. Unknown names return ErrUnknownSavedState and change nothing.
func (e *Engine) LoadState(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	amps, ok := e.saved.get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSavedState, name)
	}
	return e.edit("load", func() error {
		e.state.Restore(amps)
		return nil
	}, zap.String("name", name))
}

func (e *Engine) StateVector() qubit.Amplitudes {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Vector()
}

func (e *Engine) BlochAngles() (theta, phi float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.BlochAngles()
}

func (e *Engine) BlochVector() (x, y, z float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.BlochVector()
}

func (e *Engine) Probabilities() (p0, p1 float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Probabilities()
}

func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.undo.len() > 0
}

func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.redo.len() > 0
}

// SavedStates returns the stored names in sorted order.
func (e *Engine) SavedStates() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saved.names()
}

// edit runs mutate and, only if it succeeds, commits the pre-mutation
// snapshot to the undo stack and discards the redo branch.
// Callers hold e.mu.
func (e *Engine) edit(op string, mutate func() error, fields ...zap.Field) error {
	before := e.state.Vector()
	if err := mutate(); err != nil {
		e.state.Restore(before)
		return err
	}
	e.undo.push(before)
	e.redo.clear()
	e.logged(op, fields...)
	return nil
}

func (e *Engine) logged(op string, fields ...zap.Field) {
	if ce := e.logger.Check(zap.DebugLevel, "edit"); ce != nil {
		a := e.state.Vector()
		ce.Write(append(fields,
			zap.String("op", op),
			zap.Complex128("alpha", a.Alpha),
			zap.Complex128("beta", a.Beta),
			zap.Int("undo_depth", e.undo.len()),
			zap.Int("redo_depth", e.redo.len()),
		)...)
	}
}
