package hid

// Keycode is a usage ID from the HID Keyboard/Keypad usage page (0x07)
type Keycode uint8

// Letters
const (
	KeyA Keycode = iota + 0x04
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// Digits on the main block. Note that 0 comes after 9.
const (
	Key1 Keycode = iota + 0x1e
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
)

// Define key codes
const (
	KeyEnter        Keycode = 0x28
	KeyEscape       Keycode = 0x29
	KeyBackspace    Keycode = 0x2a
	KeyTab          Keycode = 0x2b
	KeySpace        Keycode = 0x2c
	KeyMinus        Keycode = 0x2d
	KeyEquals       Keycode = 0x2e
	KeyLeftBracket  Keycode = 0x2f
	KeyRightBracket Keycode = 0x30
	KeyBackslash    Keycode = 0x31
	KeySemicolon    Keycode = 0x33
	KeyQuote        Keycode = 0x34
	KeyGrave        Keycode = 0x35
	KeyComma        Keycode = 0x36
	KeyPeriod       Keycode = 0x37
	KeySlash        Keycode = 0x38
	KeyCapsLock     Keycode = 0x39

	KeyPrintScreen Keycode = 0x46
	KeyScrollLock  Keycode = 0x47
	KeyPause       Keycode = 0x48
	KeyInsert      Keycode = 0x49
	KeyHome        Keycode = 0x4a
	KeyPageUp      Keycode = 0x4b
	KeyDelete      Keycode = 0x4c
	KeyEnd         Keycode = 0x4d
	KeyPageDown    Keycode = 0x4e
	KeyRightArrow  Keycode = 0x4f
	KeyLeftArrow   Keycode = 0x50
	KeyDownArrow   Keycode = 0x51
	KeyUpArrow     Keycode = 0x52
	KeyNumLock     Keycode = 0x53
	KeyApplication Keycode = 0x65

	KeyMute       Keycode = 0x7f
	KeyVolumeUp   Keycode = 0x80
	KeyVolumeDown Keycode = 0x81
)

// Function keys F1-F12, then F13-F24 further up the page
const (
	KeyF1 Keycode = iota + 0x3a
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

const (
	KeyF13 Keycode = iota + 0x68
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
)

// Modifiers occupy 0xe0-0xe7 and are reported as a bitmask, not as key slots
const (
	KeyLeftControl Keycode = iota + 0xe0
	KeyLeftShift
	KeyLeftAlt
	KeyLeftGUI
	KeyRightControl
	KeyRightShift
	KeyRightAlt
	KeyRightGUI
)

// IsModifier reports whether k is one of the eight modifier keys
func (k Keycode) IsModifier() bool {
	return k >= KeyLeftControl && k <= KeyRightGUI
}

func (k Keycode) modifierBit() byte {
	return 1 << (k - KeyLeftControl)
}
