package button_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/inputsync/button"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name        string
		previous    bool
		current     bool
		transition  button.Transition
		publishCur  bool
		publishLast bool
	}{
		{name: "idle", previous: false, current: false, transition: button.Idle},
		{name: "pressed", previous: false, current: true, transition: button.WasPressed, publishCur: true},
		{name: "released", previous: true, current: false, transition: button.WasReleased, publishLast: true},
		{name: "held", previous: true, current: true, transition: button.Held, publishCur: true, publishLast: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := button.New(tt.previous, tt.current)
			assert.Equal(t, tt.previous, s.Previous())
			assert.Equal(t, tt.current, s.Current())
			assert.Equal(t, tt.transition, s.Transition())

			cur, last := s.Transition().Published()
			assert.Equal(t, tt.publishCur, cur)
			assert.Equal(t, tt.publishLast, last)

			// the published pair round-trips to the same raw pair
			assert.Equal(t, s, s.Transition().State())
		})
	}
}

func TestChanged(t *testing.T) {
	assert.False(t, button.Changed(button.New(true, true), button.New(true, true)))
	assert.True(t, button.Changed(button.New(false, true), button.New(true, true)))
	assert.True(t, button.Changed(button.New(false, false), button.New(true, false)))
}

func TestTransitionString(t *testing.T) {
	assert.Equal(t, "pressed", button.WasPressed.String())
	assert.Equal(t, "released", button.WasReleased.String())
	assert.Equal(t, "held", button.Held.String())
	assert.Equal(t, "idle", button.Idle.String())
	assert.Equal(t, "unknown", button.Transition(9).String())
}
