// Package mouse defines the canonical mouse-button enumeration and the
// published state of the global mouse.
package mouse

import "fmt"

// Button is a canonical mouse button index.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward
)

// ButtonCount is the size of the dense per-button tables.
const ButtonCount = 5

var buttonNames = [ButtonCount]string{
	ButtonLeft:    "Left",
	ButtonRight:   "Right",
	ButtonMiddle:  "Middle",
	ButtonBack:    "Back",
	ButtonForward: "Forward",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// Valid reports whether b indexes the button table.
func (b Button) Valid() bool {
	return b < ButtonCount
}
