package hid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownKey is returned by Lookup when a key name is not defined
var ErrUnknownKey = errors.New("hid: unknown key name")

var (
	keyNames = map[Keycode]string{
		KeyEnter:        "enter",
		KeyEscape:       "escape",
		KeyBackspace:    "backspace",
		KeyTab:          "tab",
		KeySpace:        "space",
		KeyMinus:        "minus",
		KeyEquals:       "equals",
		KeyLeftBracket:  "left bracket",
		KeyRightBracket: "right bracket",
		KeyBackslash:    "backslash",
		KeySemicolon:    "semicolon",
		KeyQuote:        "quote",
		KeyGrave:        "grave",
		KeyComma:        "comma",
		KeyPeriod:       "period",
		KeySlash:        "slash",
		KeyCapsLock:     "caps lock",
		KeyPrintScreen:  "print screen",
		KeyScrollLock:   "scroll lock",
		KeyPause:        "pause",
		KeyInsert:       "insert",
		KeyHome:         "home",
		KeyPageUp:       "page up",
		KeyDelete:       "delete",
		KeyEnd:          "end",
		KeyPageDown:     "page down",
		KeyRightArrow:   "right arrow",
		KeyLeftArrow:    "left arrow",
		KeyDownArrow:    "down arrow",
		KeyUpArrow:      "up arrow",
		KeyNumLock:      "num lock",
		KeyApplication:  "application",
		KeyMute:         "mute",
		KeyVolumeUp:     "volume up",
		KeyVolumeDown:   "volume down",
		KeyLeftControl:  "left control",
		KeyLeftShift:    "left shift",
		KeyLeftAlt:      "left alt",
		KeyLeftGUI:      "left gui",
		KeyRightControl: "right control",
		KeyRightShift:   "right shift",
		KeyRightAlt:     "right alt",
		KeyRightGUI:     "right gui",
	}

	// aliases only resolve, String() always returns the canonical name
	keyAliases = map[string]Keycode{
		"return":  KeyEnter,
		"esc":     KeyEscape,
		"ctrl":    KeyLeftControl,
		"control": KeyLeftControl,
		"shift":   KeyLeftShift,
		"alt":     KeyLeftAlt,
		"option":  KeyLeftAlt,
		"gui":     KeyLeftGUI,
		"win":     KeyLeftGUI,
		"cmd":     KeyLeftGUI,
		"super":   KeyLeftGUI,
		"right":   KeyRightArrow,
		"left":    KeyLeftArrow,
		"up":      KeyUpArrow,
		"down":    KeyDownArrow,
		"del":     KeyDelete,
		"pgup":    KeyPageUp,
		"pgdn":    KeyPageDown,
	}

	keysByName = make(map[string]Keycode)
)

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key1; k <= Key9; k++ {
		keyNames[k] = string(rune('1' + int(k-Key1)))
	}
	keyNames[Key0] = "0"
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("f%d", int(k-KeyF1)+1)
	}
	for k := KeyF13; k <= KeyF24; k++ {
		keyNames[k] = fmt.Sprintf("f%d", int(k-KeyF13)+13)
	}
	for k, name := range keyNames {
		keysByName[name] = k
	}
	for alias, k := range keyAliases {
		keysByName[alias] = k
	}
}

func (k Keycode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", uint8(k))
}

// Lookup returns the Keycode for a key name such as "a", "f8", "left control" or "ctrl".
// Names are case insensitive.
func Lookup(name string) (Keycode, error) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownKey, "%q", name)
	}
	return k, nil
}

// Names returns every canonical key name in ascending keycode order
func Names() []string {
	codes := make([]int, 0, len(keyNames))
	for k := range keyNames {
		codes = append(codes, int(k))
	}
	sort.Ints(codes)
	names := make([]string, 0, len(codes))
	for _, c := range codes {
		names = append(names, keyNames[Keycode(c)])
	}
	return names
}
