package locate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/Alia5/inputsync/component"
	"github.com/Alia5/inputsync/inputerr"
	"github.com/Alia5/inputsync/locate"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(w donburi.World) (kb, ms donburi.Entity)
		wantKeyboard bool
		wantMouse    bool
		wantKind     inputerr.Kind
	}{
		{
			name:  "empty world",
			setup: func(w donburi.World) (donburi.Entity, donburi.Entity) { return 0, 0 },
		},
		{
			name: "combined device",
			setup: func(w donburi.World) (donburi.Entity, donburi.Entity) {
				e := w.Create(component.Global, component.Keyboard, component.Mouse, component.LastUpdate)
				return e, e
			},
			wantKeyboard: true,
			wantMouse:    true,
		},
		{
			name: "separate devices",
			setup: func(w donburi.World) (donburi.Entity, donburi.Entity) {
				kb := w.Create(component.Global, component.Keyboard)
				ms := w.Create(component.Global, component.Mouse, component.LastUpdate)
				return kb, ms
			},
			wantKeyboard: true,
			wantMouse:    true,
		},
		{
			name: "untagged keyboard ignored",
			setup: func(w donburi.World) (donburi.Entity, donburi.Entity) {
				w.Create(component.Keyboard)
				ms := w.Create(component.Global, component.Mouse)
				return 0, ms
			},
			wantMouse: true,
		},
		{
			name: "two global keyboards",
			setup: func(w donburi.World) (donburi.Entity, donburi.Entity) {
				w.Create(component.Global, component.Keyboard)
				w.Create(component.Global, component.Keyboard, component.LastUpdate)
				return 0, 0
			},
			wantKind: inputerr.KindAmbiguousDevice,
		},
		{
			name: "two global mice in one grouping",
			setup: func(w donburi.World) (donburi.Entity, donburi.Entity) {
				w.Create(component.Global, component.Keyboard)
				w.Create(component.Global, component.Mouse)
				w.Create(component.Global, component.Mouse)
				return 0, 0
			},
			wantKind: inputerr.KindAmbiguousDevice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := donburi.NewWorld()
			kb, ms := tt.setup(w)

			d, err := locate.New(nil).Locate(w)
			if tt.wantKind != 0 {
				require.Error(t, err)
				assert.ErrorIs(t, err, inputerr.ErrConfiguration)
				assert.True(t, inputerr.IsKind(err, tt.wantKind))
				assert.False(t, d.Any())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeyboard, d.Keyboard != nil)
			assert.Equal(t, tt.wantMouse, d.Mouse != nil)
			if tt.wantKeyboard {
				assert.Equal(t, kb, d.Keyboard.Entity())
			}
			if tt.wantMouse {
				assert.Equal(t, ms, d.Mouse.Entity())
			}
		})
	}
}

func TestLocateLaterTick(t *testing.T) {
	w := donburi.NewWorld()
	l := locate.New(nil)

	d, err := l.Locate(w)
	require.NoError(t, err)
	assert.False(t, d.Any())

	e := w.Create(component.Global, component.Keyboard)
	d, err = l.Locate(w)
	require.NoError(t, err)
	require.NotNil(t, d.Keyboard)
	assert.Equal(t, e, d.Keyboard.Entity())
	assert.Nil(t, d.Mouse)
}
