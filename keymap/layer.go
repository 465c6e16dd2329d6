package keymap

import (
	"github.com/zllovesuki/MacroPad/system/led"

	"github.com/pkg/errors"
)

// KeySlot binds one physical key to an action and a display color
type KeySlot struct {
	Action Action
	Color  led.Color
}

// Layer is a complete mapping of every key. It cannot be changed once built.
type Layer struct {
	name  string
	slots [KeyCount]KeySlot
}

// NewLayer builds a layer from exactly KeyCount slots. A nil slot is an empty, unlit key.
func NewLayer(name string, slots []*KeySlot) (*Layer, error) {
	if len(slots) != KeyCount {
		return nil, errors.Wrapf(ErrSlotCount, "layer %q has %d slots, want %d", name, len(slots), KeyCount)
	}
	l := &Layer{
		name: name,
	}
	for i, s := range slots {
		if s == nil {
			continue
		}
		l.slots[i] = *s
	}
	return l, nil
}

// NewSparseLayer builds a layer from the keys that are bound. Every other key is empty and unlit.
func NewSparseLayer(name string, slots map[int]KeySlot) (*Layer, error) {
	l := &Layer{
		name: name,
	}
	for key, s := range slots {
		if key < 0 || key >= KeyCount {
			return nil, errors.Wrapf(ErrOutOfRange, "layer %q binds key %d", name, key)
		}
		l.slots[key] = s
	}
	return l, nil
}

func (l *Layer) Name() string {
	return l.name
}

// Slot returns the binding of a key
func (l *Layer) Slot(key int) (KeySlot, error) {
	if key < 0 || key >= KeyCount {
		return KeySlot{}, errors.Wrapf(ErrOutOfRange, "key %d", key)
	}
	return l.slots[key], nil
}

// Colors returns the unscaled color of every key
func (l *Layer) Colors() [KeyCount]led.Color {
	var colors [KeyCount]led.Color
	for i, s := range l.slots {
		colors[i] = s.Color
	}
	return colors
}
