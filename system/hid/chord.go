package hid

import "strings"

// Chord is an ordered set of keys meant to be reported as held together.
// The backing slice is never exposed, so a Chord cannot change after NewChord.
type Chord struct {
	keys []Keycode
}

// NewChord copies keys into a new Chord
func NewChord(keys ...Keycode) Chord {
	c := Chord{
		keys: make([]Keycode, len(keys)),
	}
	copy(c.keys, keys)
	return c
}

// Keys returns a copy of the chord's keys in their defined order
func (c Chord) Keys() []Keycode {
	keys := make([]Keycode, len(c.keys))
	copy(keys, c.keys)
	return keys
}

func (c Chord) Len() int {
	return len(c.keys)
}

func (c Chord) String() string {
	names := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		names = append(names, k.String())
	}
	return strings.Join(names, "+")
}
