package mouse

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Alia5/inputsync/button"
)

// State is the published state of the global mouse.
//
// Buttons follow the same current/last convention as the keyboard. Position
// and Scroll hold absolute values from the hook; Delta is LastPosition minus
// Position as of the most recent motion update.
type State struct {
	Current [ButtonCount]bool
	Last    [ButtonCount]bool

	Position     mgl32.Vec2
	LastPosition mgl32.Vec2
	Delta        mgl32.Vec2

	Scroll     mgl32.Vec2
	LastScroll mgl32.Vec2
}

// Button returns the published pair of b as a raw State.
func (s *State) Button(b Button) button.State {
	return button.New(s.Last[b], s.Current[b])
}

// Apply overwrites the published pair of b from a transition.
func (s *State) Apply(b Button, t button.Transition) {
	s.Current[b], s.Last[b] = t.Published()
}

// Transition returns the published transition of b.
func (s *State) Transition(b Button) button.Transition {
	return s.Button(b).Transition()
}

func (s *State) IsDown(b Button) bool      { return s.Current[b] }
func (s *State) WasPressed(b Button) bool  { return s.Transition(b) == button.WasPressed }
func (s *State) WasReleased(b Button) bool { return s.Transition(b) == button.WasReleased }
func (s *State) IsHeld(b Button) bool      { return s.Transition(b) == button.Held }

// Move shifts Position to LastPosition and stores pos. Delta is computed from
// the position in place before the overwrite.
func (s *State) Move(pos mgl32.Vec2) {
	s.Delta = s.Position.Sub(pos)
	s.LastPosition = s.Position
	s.Position = pos
}

// ScrollTo shifts Scroll to LastScroll and stores v.
func (s *State) ScrollTo(v mgl32.Vec2) {
	s.LastScroll = s.Scroll
	s.Scroll = v
}

// Mask encodes the buttons currently down as a bitfield, bit n set for
// Button(n).
func (s *State) Mask() uint8 {
	var m uint8
	for i, down := range s.Current {
		if down {
			m |= 1 << i
		}
	}
	return m
}
