package hook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/inputsync/device/keyboard"
	"github.com/Alia5/inputsync/device/mouse"
	"github.com/Alia5/inputsync/hook"
)

func TestMappingsOrder(t *testing.T) {
	rows := testTable().Mappings()

	want := []hook.Mapping{
		{Code: 30, Target: keyboard.KeyA.String()},
		{Code: 42, Target: keyboard.KeyLeftShift.String()},
		{Code: 272, Target: mouse.ButtonLeft.String(), Mouse: true},
		{Code: 273, Target: mouse.ButtonRight.String(), Mouse: true},
	}
	assert.Equal(t, want, rows)
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event hook.Event
		want  string
	}{
		{hook.Event{Kind: hook.KeyPressed, Code: 30}, "key-pressed code=0x01e"},
		{hook.Event{Kind: hook.ButtonReleased, Code: 272}, "button-released code=0x110"},
		{hook.Event{Kind: hook.PointerMoved, X: 1.5, Y: -2}, "pointer-moved x=1.5 y=-2"},
		{hook.Event{Kind: hook.Kind(42)}, "kind(42) x=0 y=0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.event.String())
	}
}
