package hook

import (
	"sort"

	"github.com/Alia5/inputsync/device/keyboard"
	"github.com/Alia5/inputsync/device/mouse"
)

// CodeTable maps platform codes to canonical keys and buttons. It is built
// once and read-only afterwards, so platform code sets can be swapped
// without touching the adapter.
type CodeTable struct {
	Name    string
	Keys    map[uint16]keyboard.Key
	Buttons map[uint16]mouse.Button
}

// Key looks up a keyboard code.
func (t *CodeTable) Key(code uint16) (keyboard.Key, bool) {
	k, ok := t.Keys[code]
	return k, ok
}

// Button looks up a mouse button code.
func (t *CodeTable) Button(code uint16) (mouse.Button, bool) {
	b, ok := t.Buttons[code]
	return b, ok
}

// Mapping is one row of a CodeTable.
type Mapping struct {
	Code   uint16
	Target string
	Mouse  bool
}

// Mappings returns all rows, keys first, each group sorted by code.
func (t *CodeTable) Mappings() []Mapping {
	out := make([]Mapping, 0, len(t.Keys)+len(t.Buttons))
	for c, k := range t.Keys {
		out = append(out, Mapping{Code: c, Target: k.String()})
	}
	for c, b := range t.Buttons {
		out = append(out, Mapping{Code: c, Target: b.String(), Mouse: true})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mouse != out[j].Mouse {
			return !out[i].Mouse
		}
		return out[i].Code < out[j].Code
	})
	return out
}
