// Package hook bridges an OS-level global input hook to the capture buffer.
//
// A Source delivers typed Events on its own goroutine. The Adapter maps each
// OS code to the canonical key or button through a CodeTable and stores a
// single "is down" value or the latest vector into the capture.Buffer.
package hook

import "fmt"

// Kind is the notification type of an Event.
type Kind uint8

const (
	KeyPressed Kind = iota + 1
	KeyReleased
	ButtonPressed
	ButtonReleased
	ButtonDragged
	PointerMoved
	WheelScrolled
)

var kindNames = map[Kind]string{
	KeyPressed:     "key-pressed",
	KeyReleased:    "key-released",
	ButtonPressed:  "button-pressed",
	ButtonReleased: "button-released",
	ButtonDragged:  "button-dragged",
	PointerMoved:   "pointer-moved",
	WheelScrolled:  "wheel-scrolled",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Event is one raw notification from the hook. Code is set for key and
// button events; X and Y for motion, drag and scroll events.
type Event struct {
	Kind Kind
	Code uint16
	X, Y float32
}

func (e Event) String() string {
	switch e.Kind {
	case KeyPressed, KeyReleased, ButtonPressed, ButtonReleased:
		return fmt.Sprintf("%s code=0x%03x", e.Kind, e.Code)
	default:
		return fmt.Sprintf("%s x=%g y=%g", e.Kind, e.X, e.Y)
	}
}
