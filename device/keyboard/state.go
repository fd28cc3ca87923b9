package keyboard

import "github.com/Alia5/inputsync/button"

// State is the published per-key state of the global keyboard.
//
// Current and Last mirror the last applied transition of each key, not the
// raw hook samples: Current is "is it down now", Last is "was it down one
// tick ago".
type State struct {
	Current [KeyCount]bool
	Last    [KeyCount]bool
}

// Button returns the published pair of k as a raw State.
func (s *State) Button(k Key) button.State {
	return button.New(s.Last[k], s.Current[k])
}

// Apply overwrites the published pair of k from a transition.
func (s *State) Apply(k Key, t button.Transition) {
	s.Current[k], s.Last[k] = t.Published()
}

// Transition returns the published transition of k.
func (s *State) Transition(k Key) button.Transition {
	return s.Button(k).Transition()
}

// IsDown reports whether k is currently down.
func (s *State) IsDown(k Key) bool { return s.Current[k] }

// WasPressed reports whether k went down on the last update.
func (s *State) WasPressed(k Key) bool { return s.Transition(k) == button.WasPressed }

// WasReleased reports whether k went up on the last update.
func (s *State) WasReleased(k Key) bool { return s.Transition(k) == button.WasReleased }

// IsHeld reports whether k has been down for at least two updates.
func (s *State) IsHeld(k Key) bool { return s.Transition(k) == button.Held }

// Down returns all keys currently down in ascending order.
func (s *State) Down() []Key {
	var keys []Key
	for i, down := range s.Current {
		if down {
			keys = append(keys, Key(i))
		}
	}
	return keys
}
