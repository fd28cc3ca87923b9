// Package keyboard defines the canonical key enumeration and the published
// state of the global keyboard.
package keyboard

// Key is a canonical keyboard button index.
type Key uint8

// KeyCount is the size of the dense per-key tables.
const KeyCount = 256

// Canonical key codes are HID usage codes (Keyboard/Keypad usage page).
const (
	KeyNone Key = 0x00

	// Letters A-Z
	KeyA Key = 0x04
	KeyB Key = 0x05
	KeyC Key = 0x06
	KeyD Key = 0x07
	KeyE Key = 0x08
	KeyF Key = 0x09
	KeyG Key = 0x0A
	KeyH Key = 0x0B
	KeyI Key = 0x0C
	KeyJ Key = 0x0D
	KeyK Key = 0x0E
	KeyL Key = 0x0F
	KeyM Key = 0x10
	KeyN Key = 0x11
	KeyO Key = 0x12
	KeyP Key = 0x13
	KeyQ Key = 0x14
	KeyR Key = 0x15
	KeyS Key = 0x16
	KeyT Key = 0x17
	KeyU Key = 0x18
	KeyV Key = 0x19
	KeyW Key = 0x1A
	KeyX Key = 0x1B
	KeyY Key = 0x1C
	KeyZ Key = 0x1D

	// Numbers 1-0 (top row)
	Key1 Key = 0x1E
	Key2 Key = 0x1F
	Key3 Key = 0x20
	Key4 Key = 0x21
	Key5 Key = 0x22
	Key6 Key = 0x23
	Key7 Key = 0x24
	Key8 Key = 0x25
	Key9 Key = 0x26
	Key0 Key = 0x27

	// Special keys
	KeyEnter      Key = 0x28
	KeyEscape     Key = 0x29
	KeyBackspace  Key = 0x2A
	KeyTab        Key = 0x2B
	KeySpace      Key = 0x2C
	KeyMinus      Key = 0x2D // - and _
	KeyEqual      Key = 0x2E // = and +
	KeyLeftBrace  Key = 0x2F // [ and {
	KeyRightBrace Key = 0x30 // ] and }
	KeyBackslash  Key = 0x31 // \ and |
	KeyNonUSHash  Key = 0x32 // Non-US # and ~
	KeySemicolon  Key = 0x33 // ; and :
	KeyApostrophe Key = 0x34 // ' and "
	KeyGrave      Key = 0x35 // ` and ~
	KeyComma      Key = 0x36 // , and <
	KeyPeriod     Key = 0x37 // . and >
	KeySlash      Key = 0x38 // / and ?
	KeyCapsLock   Key = 0x39

	// Function keys
	KeyF1  Key = 0x3A
	KeyF2  Key = 0x3B
	KeyF3  Key = 0x3C
	KeyF4  Key = 0x3D
	KeyF5  Key = 0x3E
	KeyF6  Key = 0x3F
	KeyF7  Key = 0x40
	KeyF8  Key = 0x41
	KeyF9  Key = 0x42
	KeyF10 Key = 0x43
	KeyF11 Key = 0x44
	KeyF12 Key = 0x45

	// Control keys
	KeyPrintScreen Key = 0x46
	KeyScrollLock  Key = 0x47
	KeyPause       Key = 0x48
	KeyInsert      Key = 0x49
	KeyHome        Key = 0x4A
	KeyPageUp      Key = 0x4B
	KeyDelete      Key = 0x4C
	KeyEnd         Key = 0x4D
	KeyPageDown    Key = 0x4E

	// Arrow keys
	KeyRight Key = 0x4F
	KeyLeft  Key = 0x50
	KeyDown  Key = 0x51
	KeyUp    Key = 0x52

	// Numpad
	KeyNumLock    Key = 0x53
	KeyKpSlash    Key = 0x54 // Keypad /
	KeyKpAsterisk Key = 0x55 // Keypad *
	KeyKpMinus    Key = 0x56 // Keypad -
	KeyKpPlus     Key = 0x57 // Keypad +
	KeyKpEnter    Key = 0x58 // Keypad Enter
	KeyKp1        Key = 0x59 // Keypad 1 and End
	KeyKp2        Key = 0x5A // Keypad 2 and Down
	KeyKp3        Key = 0x5B // Keypad 3 and PageDn
	KeyKp4        Key = 0x5C // Keypad 4 and Left
	KeyKp5        Key = 0x5D // Keypad 5
	KeyKp6        Key = 0x5E // Keypad 6 and Right
	KeyKp7        Key = 0x5F // Keypad 7 and Home
	KeyKp8        Key = 0x60 // Keypad 8 and Up
	KeyKp9        Key = 0x61 // Keypad 9 and PageUp
	KeyKp0        Key = 0x62 // Keypad 0 and Insert
	KeyKpDot      Key = 0x63 // Keypad . and Delete

	// Additional keys
	KeyNonUSBackslash Key = 0x64 // Non-US \ and |
	KeyApplication    Key = 0x65 // Application (Windows Menu key)
	KeyPower          Key = 0x66 // Power (not commonly used)
	KeyKpEqual        Key = 0x67 // Keypad =

	// Extended function keys
	KeyF13 Key = 0x68
	KeyF14 Key = 0x69
	KeyF15 Key = 0x6A
	KeyF16 Key = 0x6B
	KeyF17 Key = 0x6C
	KeyF18 Key = 0x6D
	KeyF19 Key = 0x6E
	KeyF20 Key = 0x6F
	KeyF21 Key = 0x70
	KeyF22 Key = 0x71
	KeyF23 Key = 0x72
	KeyF24 Key = 0x73

	// Execution keys
	KeyExecute    Key = 0x74
	KeyHelp       Key = 0x75
	KeyMenu       Key = 0x76
	KeySelect     Key = 0x77
	KeyStop       Key = 0x78
	KeyAgain      Key = 0x79 // Redo
	KeyUndo       Key = 0x7A
	KeyCut        Key = 0x7B
	KeyCopy       Key = 0x7C
	KeyPaste      Key = 0x7D
	KeyFind       Key = 0x7E
	KeyMute       Key = 0x7F
	KeyVolumeUp   Key = 0x80
	KeyVolumeDown Key = 0x81

	// International and language keys
	KeyKpComma        Key = 0x85 // Keypad , (Brazil)
	KeyInternational1 Key = 0x87 // Ro
	KeyInternational2 Key = 0x88 // Katakana/Hiragana
	KeyInternational3 Key = 0x89 // Yen
	KeyInternational4 Key = 0x8A // Henkan
	KeyInternational5 Key = 0x8B // Muhenkan
	KeyLang1          Key = 0x90 // Hangul
	KeyLang2          Key = 0x91 // Hanja

	// Modifier keys
	KeyLeftCtrl   Key = 0xE0
	KeyLeftShift  Key = 0xE1
	KeyLeftAlt    Key = 0xE2
	KeyLeftGUI    Key = 0xE3 // Windows/Command key
	KeyRightCtrl  Key = 0xE4
	KeyRightShift Key = 0xE5
	KeyRightAlt   Key = 0xE6
	KeyRightGUI   Key = 0xE7

	// Media control keys
	KeyMediaPlayPause Key = 0xE8 // Play/Pause
	KeyMediaStop      Key = 0xE9 // Stop
	KeyMediaNext      Key = 0xEB // Next Track
	KeyMediaPrevious  Key = 0xEC // Previous Track
)

