package keyboard

import (
	"fmt"
	"sort"
	"strings"
)

// keyNames maps canonical keys to human-readable names.
var keyNames = map[Key]string{
	// Letters
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	// Numbers
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	// Special keys
	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeySpace:      "Space",
	KeyMinus:      "Minus",
	KeyEqual:      "Equal",
	KeyLeftBrace:  "LeftBrace",
	KeyRightBrace: "RightBrace",
	KeyBackslash:  "Backslash",
	KeyNonUSHash:  "NonUSHash",
	KeySemicolon:  "Semicolon",
	KeyApostrophe: "Apostrophe",
	KeyGrave:      "Grave",
	KeyComma:      "Comma",
	KeyPeriod:     "Period",
	KeySlash:      "Slash",
	KeyCapsLock:   "CapsLock",

	// Function keys
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	// Control keys
	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyPause:       "Pause",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyPageUp:      "PageUp",
	KeyDelete:      "Delete",
	KeyEnd:         "End",
	KeyPageDown:    "PageDown",

	// Arrow keys
	KeyRight: "Right",
	KeyLeft:  "Left",
	KeyDown:  "Down",
	KeyUp:    "Up",

	// Numpad
	KeyNumLock:    "NumLock",
	KeyKpSlash:    "Kp/",
	KeyKpAsterisk: "Kp*",
	KeyKpMinus:    "Kp-",
	KeyKpPlus:     "Kp+",
	KeyKpEnter:    "KpEnter",
	KeyKp1:        "Kp1",
	KeyKp2:        "Kp2",
	KeyKp3:        "Kp3",
	KeyKp4:        "Kp4",
	KeyKp5:        "Kp5",
	KeyKp6:        "Kp6",
	KeyKp7:        "Kp7",
	KeyKp8:        "Kp8",
	KeyKp9:        "Kp9",
	KeyKp0:        "Kp0",
	KeyKpDot:      "Kp.",
	KeyKpEqual:    "Kp=",

	// Additional
	KeyNonUSBackslash: "NonUSBackslash",
	KeyApplication:    "Application",
	KeyPower:          "Power",
	KeyExecute:        "Execute",
	KeyHelp:           "Help",
	KeyMenu:           "Menu",
	KeySelect:         "Select",
	KeyStop:           "Stop",
	KeyAgain:          "Again",
	KeyUndo:           "Undo",
	KeyCut:            "Cut",
	KeyCopy:           "Copy",
	KeyPaste:          "Paste",
	KeyFind:           "Find",
	KeyMute:           "Mute",
	KeyVolumeUp:       "VolumeUp",
	KeyVolumeDown:     "VolumeDown",

	// International
	KeyKpComma:        "KpComma",
	KeyInternational1: "International1",
	KeyInternational2: "International2",
	KeyInternational3: "International3",
	KeyInternational4: "International4",
	KeyInternational5: "International5",
	KeyLang1:          "Lang1",
	KeyLang2:          "Lang2",

	// Modifiers
	KeyLeftCtrl:   "LeftCtrl",
	KeyLeftShift:  "LeftShift",
	KeyLeftAlt:    "LeftAlt",
	KeyLeftGUI:    "LeftGUI",
	KeyRightCtrl:  "RightCtrl",
	KeyRightShift: "RightShift",
	KeyRightAlt:   "RightAlt",
	KeyRightGUI:   "RightGUI",

	// Media control
	KeyMediaPlayPause: "MediaPlayPause",
	KeyMediaStop:      "MediaStop",
	KeyMediaNext:      "MediaNext",
	KeyMediaPrevious:  "MediaPrevious",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, n := range keyNames {
		m[strings.ToLower(n)] = k
	}
	return m
}()

// String returns the key name, or its hex usage code for unnamed keys.
func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Key(0x%02X)", uint8(k))
}

// Named reports whether k has a canonical name.
func (k Key) Named() bool {
	_, ok := keyNames[k]
	return ok
}

// ParseKey looks up a key by name. Lookup is case-insensitive.
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[strings.ToLower(name)]; ok {
		return k, nil
	}
	return KeyNone, fmt.Errorf("unknown key %q", name)
}

// Keys returns every named key in ascending code order.
func Keys() []Key {
	keys := make([]Key, 0, len(keyNames))
	for k := range keyNames {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
