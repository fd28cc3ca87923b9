// Package component binds the published device state to donburi component
// types.
package component

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/Alia5/inputsync/device/keyboard"
	"github.com/Alia5/inputsync/device/mouse"
)

// LastUpdateData is the time of the most recent published change, measured
// as the cumulative elapsed simulation time.
type LastUpdateData struct {
	At time.Duration
}

var (
	// Global marks an entity as a candidate for the process-wide devices.
	Global = donburi.NewTag()

	// Keyboard is both the keyboard capability marker and its published state.
	Keyboard = donburi.NewComponentType[keyboard.State]()
	// Mouse is both the mouse capability marker and its published state.
	Mouse = donburi.NewComponentType[mouse.State]()

	LastUpdate = donburi.NewComponentType[LastUpdateData]()
)

// Touch records a published change on entry at the given time. Entries
// without a LastUpdate component are left alone.
func Touch(entry *donburi.Entry, at time.Duration) {
	if !entry.HasComponent(LastUpdate) {
		return
	}
	LastUpdate.Get(entry).At = at
}
