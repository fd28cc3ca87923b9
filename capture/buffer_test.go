package capture_test

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Alia5/inputsync/capture"
	"github.com/Alia5/inputsync/device/keyboard"
	"github.com/Alia5/inputsync/device/mouse"
)

func TestKeysAndButtons(t *testing.T) {
	b := capture.New()

	b.SetKey(keyboard.KeyA, true)
	b.SetKey(keyboard.KeyA, true)
	assert.True(t, b.Key(keyboard.KeyA))
	b.SetKey(keyboard.KeyA, false)
	b.SetKey(keyboard.KeyA, false)
	assert.False(t, b.Key(keyboard.KeyA))

	b.SetButton(mouse.ButtonRight, true)
	assert.True(t, b.Button(mouse.ButtonRight))
	b.SetButton(mouse.Button(200), true)
	assert.False(t, b.Button(mouse.Button(200)))
}

func TestTakeMotion(t *testing.T) {
	b := capture.New()
	assert.Equal(t, capture.Motion{}, b.TakeMotion())

	b.SetPosition(mgl32.Vec2{1.5, -3})
	b.SetPosition(mgl32.Vec2{640, 480})
	b.SetScroll(mgl32.Vec2{0, -1})

	m := b.TakeMotion()
	assert.True(t, m.Moved)
	assert.Equal(t, mgl32.Vec2{640, 480}, m.Position)
	assert.True(t, m.Scrolled)
	assert.Equal(t, mgl32.Vec2{0, -1}, m.Scroll)

	assert.False(t, b.Moved())
	assert.False(t, b.Scrolled())
	// latest values stay in place after the flags are consumed
	assert.Equal(t, mgl32.Vec2{640, 480}, b.Position())
	assert.Equal(t, capture.Motion{}, b.TakeMotion())
}

func TestReset(t *testing.T) {
	b := capture.New()
	b.SetKey(keyboard.KeyEnter, true)
	b.SetButton(mouse.ButtonLeft, true)
	b.SetPosition(mgl32.Vec2{3, 4})
	b.Reset()

	assert.False(t, b.Key(keyboard.KeyEnter))
	assert.False(t, b.Button(mouse.ButtonLeft))
	assert.False(t, b.Moved())
	assert.Equal(t, mgl32.Vec2{}, b.Position())
}

func TestConcurrentProducer(t *testing.T) {
	b := capture.New()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			b.SetKey(keyboard.KeySpace, i%2 == 0)
			b.SetPosition(mgl32.Vec2{float32(i), float32(i)})
		}
	}()
	for i := 0; i < 100; i++ {
		m := b.TakeMotion()
		if m.Moved {
			// both halves always come from the same store
			assert.Equal(t, m.Position[0], m.Position[1])
		}
		_ = b.Key(keyboard.KeySpace)
	}
	wg.Wait()
	m := b.TakeMotion()
	if m.Moved {
		assert.Equal(t, mgl32.Vec2{999, 999}, m.Position)
	}
}
