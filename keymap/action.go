package keymap

import (
	"fmt"

	"github.com/zllovesuki/MacroPad/system/hid"
)

// Kind tells which variant an Action holds
type Kind int

// Define all the possible action kinds
const (
	KindEmpty Kind = iota
	KindKeycode
	KindChord
	KindSelectLayer
	KindAdjustBrightness
)

func (k Kind) String() string {
	return [...]string{
		"Empty",
		"Keycode",
		"Chord",
		"SelectLayer",
		"AdjustBrightness",
	}[k]
}

// Action is what a key does when pressed. The zero value is an empty action.
type Action struct {
	kind  Kind
	key   hid.Keycode
	chord hid.Chord
	arg   int
}

// Empty returns an action that does nothing
func Empty() Action {
	return Action{}
}

// Key returns an action sending a single keycode
func Key(k hid.Keycode) Action {
	return Action{kind: KindKeycode, key: k}
}

// Chord returns an action sending every key together, in the given order
func Chord(keys ...hid.Keycode) Action {
	return Action{kind: KindChord, chord: hid.NewChord(keys...)}
}

// SelectLayer returns an action switching the active layer
func SelectLayer(index int) Action {
	return Action{kind: KindSelectLayer, arg: index}
}

// AdjustBrightness returns an action moving the brightness by delta steps
func AdjustBrightness(delta int) Action {
	return Action{kind: KindAdjustBrightness, arg: delta}
}

func (a Action) Kind() Kind {
	return a.kind
}

// Keycode is only meaningful for KindKeycode
func (a Action) Keycode() hid.Keycode {
	return a.key
}

// Chord is only meaningful for KindChord
func (a Action) Chord() hid.Chord {
	return a.chord
}

// Layer is only meaningful for KindSelectLayer
func (a Action) Layer() int {
	return a.arg
}

// Delta is only meaningful for KindAdjustBrightness
func (a Action) Delta() int {
	return a.arg
}

func (a Action) String() string {
	switch a.kind {
	case KindKeycode:
		return fmt.Sprintf("%s(%s)", a.kind, a.key)
	case KindChord:
		return fmt.Sprintf("%s(%s)", a.kind, a.chord)
	case KindSelectLayer:
		return fmt.Sprintf("%s(%d)", a.kind, a.arg)
	case KindAdjustBrightness:
		return fmt.Sprintf("%s(%+d)", a.kind, a.arg)
	default:
		return a.kind.String()
	}
}
