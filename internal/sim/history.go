package sim

import "qtermbloch/internal/qubit"

// history is a LIFO of amplitude snapshots. A positive limit evicts the
// oldest snapshot once the stack is full.
type history struct {
	items []qubit.Amplitudes
	limit int
}

func (h *history) push(a qubit.Amplitudes) {
	if h.limit > 0 && len(h.items) >= h.limit {
		h.items = h.items[1:]
	}
	h.items = append(h.items, a)
}

func (h *history) pop() (qubit.Amplitudes, bool) {
	if len(h.items) == 0 {
		return qubit.Amplitudes{}, false
	}
	last := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]
	return last, true
}

func (h *history) clear() {
	h.items = h.items[:0]
}

func (h *history) len() int {
	return len(h.items)
}
