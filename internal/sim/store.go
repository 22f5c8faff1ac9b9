package sim

import (
	"fmt"
	"slices"

	"qtermbloch/internal/qubit"
)

// store maps user-chosen names to saved amplitude pairs. Names are never
// overwritten or removed.
type store struct {
	states map[string]qubit.Amplitudes
}

func newStore() *store {
	return &store{states: make(map[string]qubit.Amplitudes)}
}

// put saves a under name, or under name_1, name_2, ... when name is taken,
// and returns the key actually used.
func (s *store) put(name string, a qubit.Amplitudes) string {
	key := name
	if _, taken := s.states[key]; taken {
		for version := 1; ; version++ {
			key = fmt.Sprintf("%s_%d", name, version)
			if _, taken := s.states[key]; !taken {
				break
			}
		}
	}
	s.states[key] = a
	return key
}

func (s *store) get(name string) (qubit.Amplitudes, bool) {
	a, ok := s.states[name]
	return a, ok
}

func (s *store) names() []string {
	names := make([]string, 0, len(s.states))
	for name := range s.states {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
