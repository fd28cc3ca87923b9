package keyboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputsync/button"
	"github.com/Alia5/inputsync/device/keyboard"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    keyboard.Key
		wantErr bool
	}{
		{name: "letter", input: "A", want: keyboard.KeyA},
		{name: "case insensitive", input: "leftctrl", want: keyboard.KeyLeftCtrl},
		{name: "keypad", input: "Kp+", want: keyboard.KeyKpPlus},
		{name: "unknown", input: "Hyper", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := keyboard.ParseKey(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, k)
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Space", keyboard.KeySpace.String())
	assert.Equal(t, "RightGUI", keyboard.KeyRightGUI.String())
	assert.Equal(t, "Key(0xF0)", keyboard.Key(0xF0).String())
	assert.False(t, keyboard.Key(0xF0).Named())
}

func TestKeysSortedAndNamed(t *testing.T) {
	keys := keyboard.Keys()
	require.NotEmpty(t, keys)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
	for _, k := range keys {
		assert.True(t, k.Named(), k.String())
	}
}

func TestStateApply(t *testing.T) {
	var s keyboard.State

	s.Apply(keyboard.KeyW, button.WasPressed)
	assert.True(t, s.IsDown(keyboard.KeyW))
	assert.True(t, s.WasPressed(keyboard.KeyW))
	assert.Equal(t, []keyboard.Key{keyboard.KeyW}, s.Down())

	s.Apply(keyboard.KeyW, button.Held)
	assert.True(t, s.IsHeld(keyboard.KeyW))
	assert.False(t, s.WasPressed(keyboard.KeyW))

	s.Apply(keyboard.KeyW, button.WasReleased)
	assert.False(t, s.IsDown(keyboard.KeyW))
	assert.True(t, s.WasReleased(keyboard.KeyW))
	assert.Empty(t, s.Down())

	s.Apply(keyboard.KeyW, button.Idle)
	assert.Equal(t, button.Idle, s.Transition(keyboard.KeyW))
	assert.Equal(t, button.New(false, false), s.Button(keyboard.KeyW))
}
