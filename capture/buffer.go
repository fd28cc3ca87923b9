// Package capture holds the state shared between the hook goroutine and the
// simulation tick.
//
// Buffer is a single-producer/single-consumer latest-value mailbox per field.
// The producer only stores whole values ("is this button down", "latest
// position"). The consumer only loads, except for the moved/scrolled flags it
// consumes once per tick. Every field is atomic, so no lock is needed on
// either side.
package capture

import (
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Alia5/inputsync/device/keyboard"
	"github.com/Alia5/inputsync/device/mouse"
)

// Buffer is the capture-side record of raw input.
type Buffer struct {
	keys    [keyboard.KeyCount]atomic.Bool
	buttons [mouse.ButtonCount]atomic.Bool

	position atomic.Uint64
	scroll   atomic.Uint64
	moved    atomic.Bool
	scrolled atomic.Bool
}

// New returns an empty Buffer with every button up.
func New() *Buffer {
	return &Buffer{}
}

// SetKey stores the raw down state of k.
func (b *Buffer) SetKey(k keyboard.Key, down bool) {
	b.keys[k].Store(down)
}

// Key loads the raw down state of k.
func (b *Buffer) Key(k keyboard.Key) bool {
	return b.keys[k].Load()
}

// SetButton stores the raw down state of btn. Buttons outside the table are
// ignored.
func (b *Buffer) SetButton(btn mouse.Button, down bool) {
	if !btn.Valid() {
		return
	}
	b.buttons[btn].Store(down)
}

// Button loads the raw down state of btn.
func (b *Buffer) Button(btn mouse.Button) bool {
	if !btn.Valid() {
		return false
	}
	return b.buttons[btn].Load()
}

// SetPosition stores the latest absolute pointer position and raises the
// moved flag. The position is published before the flag.
func (b *Buffer) SetPosition(p mgl32.Vec2) {
	b.position.Store(pack(p))
	b.moved.Store(true)
}

// Position loads the latest absolute pointer position.
func (b *Buffer) Position() mgl32.Vec2 {
	return unpack(b.position.Load())
}

// SetScroll stores the latest scroll vector and raises the scrolled flag.
func (b *Buffer) SetScroll(v mgl32.Vec2) {
	b.scroll.Store(pack(v))
	b.scrolled.Store(true)
}

// Scroll loads the latest scroll vector.
func (b *Buffer) Scroll() mgl32.Vec2 {
	return unpack(b.scroll.Load())
}

// Moved reports the moved flag without consuming it.
func (b *Buffer) Moved() bool { return b.moved.Load() }

// Scrolled reports the scrolled flag without consuming it.
func (b *Buffer) Scrolled() bool { return b.scrolled.Load() }

// Motion is the pointer activity consumed by one tick.
type Motion struct {
	Moved    bool
	Position mgl32.Vec2
	Scrolled bool
	Scroll   mgl32.Vec2
}

// TakeMotion resets the moved and scrolled flags and returns what they
// covered. It is the only place the flags go back to false and must be
// called exactly once per tick. A flag is swapped before its vector is
// loaded, so a concurrent update is either returned now or left flagged for
// the next tick.
func (b *Buffer) TakeMotion() Motion {
	var m Motion
	if m.Moved = b.moved.Swap(false); m.Moved {
		m.Position = b.Position()
	}
	if m.Scrolled = b.scrolled.Swap(false); m.Scrolled {
		m.Scroll = b.Scroll()
	}
	return m
}

// Reset clears every field. It must not race with a running producer.
func (b *Buffer) Reset() {
	for i := range b.keys {
		b.keys[i].Store(false)
	}
	for i := range b.buttons {
		b.buttons[i].Store(false)
	}
	b.position.Store(0)
	b.scroll.Store(0)
	b.moved.Store(false)
	b.scrolled.Store(false)
}

func pack(v mgl32.Vec2) uint64 {
	return uint64(math.Float32bits(v[0]))<<32 | uint64(math.Float32bits(v[1]))
}

func unpack(u uint64) mgl32.Vec2 {
	return mgl32.Vec2{math.Float32frombits(uint32(u >> 32)), math.Float32frombits(uint32(u))}
}
