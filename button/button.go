// Package button classifies a single button's down/up samples into edge
// transitions.
//
// A State holds exactly two raw samples: the value at the previous tick and
// the value at the current tick. It is built fresh for every comparison and
// is never kept beyond one diff.
package button

// State packs the previous and current raw samples of one button into two bits.
// Bit 0 is the current sample, bit 1 the previous sample.
type State uint8

const (
	currentBit  State = 1 << 0
	previousBit State = 1 << 1
)

// Transition is the edge category derived from a State.
type Transition uint8

const (
	// Idle: up now, up before.
	Idle Transition = iota
	// WasPressed: down now, up before.
	WasPressed
	// WasReleased: up now, down before.
	WasReleased
	// Held: down now, down before.
	Held
)

// transitions is indexed by the raw State bits.
var transitions = [4]Transition{
	0:                        Idle,
	currentBit:               WasPressed,
	previousBit:              WasReleased,
	previousBit | currentBit: Held,
}

// New builds a State from two raw samples.
func New(previous, current bool) State {
	var s State
	if previous {
		s |= previousBit
	}
	if current {
		s |= currentBit
	}
	return s
}

// Previous returns the sample from the previous tick.
func (s State) Previous() bool { return s&previousBit != 0 }

// Current returns the sample from the current tick.
func (s State) Current() bool { return s&currentBit != 0 }

// Transition classifies the State.
func (s State) Transition() Transition {
	return transitions[s&(previousBit|currentBit)]
}

// Published returns the (current, last) pair written to the external store
// for t. It always answers "is it down now" and "was it down one tick ago".
func (t Transition) Published() (current, last bool) {
	switch t {
	case WasPressed:
		return true, false
	case WasReleased:
		return false, true
	case Held:
		return true, true
	default:
		return false, false
	}
}

// State returns the raw pair equivalent to the published pair of t.
func (t Transition) State() State {
	current, last := t.Published()
	return New(last, current)
}

func (t Transition) String() string {
	switch t {
	case Idle:
		return "idle"
	case WasPressed:
		return "pressed"
	case WasReleased:
		return "released"
	case Held:
		return "held"
	default:
		return "unknown"
	}
}

// Changed reports whether a freshly computed State differs from the one last
// published for the same index.
func Changed(published, computed State) bool {
	return published != computed
}
