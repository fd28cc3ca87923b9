//go:build linux

package hook

import (
	"testing"

	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
)

// lastKeyCode is KEY_MAX from linux/input-event-codes.h.
const lastKeyCode evdev.EvCode = 0x2ff

func TestForwardedCodesAreMapped(t *testing.T) {
	table := EvdevCodes()
	for code := evdev.EvCode(0); code <= lastKeyCode; code++ {
		key, btn := isKey(code), isMouseButton(code)
		name := evdev.CodeName(evdev.EV_KEY, code)
		assert.False(t, key && btn, "%s forwarded as both key and button", name)
		if key {
			_, ok := table.Key(uint16(code))
			assert.True(t, ok, "%s forwarded as key but unmapped", name)
		}
		if btn {
			_, ok := table.Button(uint16(code))
			assert.True(t, ok, "%s forwarded as button but unmapped", name)
		}
	}
}

func TestSourceFilters(t *testing.T) {
	tests := []struct {
		code   evdev.EvCode
		key    bool
		button bool
	}{
		{code: evdev.KEY_A, key: true},
		{code: evdev.KEY_RO, key: true},
		{code: evdev.KEY_HANGEUL, key: true},
		{code: evdev.KEY_CALC},
		{code: evdev.KEY_SLEEP},
		{code: evdev.BTN_LEFT, button: true},
		{code: evdev.BTN_EXTRA, button: true},
		{code: evdev.BTN_TASK},
		{code: evdev.BTN_TASK + 1},
		{code: evdev.BTN_TOUCH},
		{code: evdev.BTN_SOUTH},
	}
	for _, tt := range tests {
		t.Run(evdev.CodeName(evdev.EV_KEY, tt.code), func(t *testing.T) {
			assert.Equal(t, tt.key, isKey(tt.code))
			assert.Equal(t, tt.button, isMouseButton(tt.code))
		})
	}
}
