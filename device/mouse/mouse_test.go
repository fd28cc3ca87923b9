package mouse_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Alia5/inputsync/button"
	"github.com/Alia5/inputsync/device/mouse"
)

func TestMove(t *testing.T) {
	var s mouse.State
	s.Move(mgl32.Vec2{10, 20})
	s.Move(mgl32.Vec2{15, 5})

	assert.Equal(t, mgl32.Vec2{10, 20}, s.LastPosition)
	assert.Equal(t, mgl32.Vec2{15, 5}, s.Position)
	assert.Equal(t, mgl32.Vec2{-5, 15}, s.Delta)
}

func TestScrollTo(t *testing.T) {
	var s mouse.State
	s.ScrollTo(mgl32.Vec2{0, 1})
	s.ScrollTo(mgl32.Vec2{0, -2})

	assert.Equal(t, mgl32.Vec2{0, 1}, s.LastScroll)
	assert.Equal(t, mgl32.Vec2{0, -2}, s.Scroll)
}

func TestMask(t *testing.T) {
	var s mouse.State
	s.Apply(mouse.ButtonLeft, button.WasPressed)
	s.Apply(mouse.ButtonForward, button.Held)
	s.Apply(mouse.ButtonRight, button.WasReleased)

	assert.Equal(t, uint8(1<<mouse.ButtonLeft|1<<mouse.ButtonForward), s.Mask())
	assert.True(t, s.WasPressed(mouse.ButtonLeft))
	assert.True(t, s.IsHeld(mouse.ButtonForward))
	assert.True(t, s.WasReleased(mouse.ButtonRight))
	assert.False(t, s.IsDown(mouse.ButtonRight))
}

func TestButtonString(t *testing.T) {
	assert.Equal(t, "Middle", mouse.ButtonMiddle.String())
	assert.Equal(t, "Button(7)", mouse.Button(7).String())
	assert.False(t, mouse.Button(mouse.ButtonCount).Valid())
	assert.True(t, mouse.ButtonBack.Valid())
}
