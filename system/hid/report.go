package hid

import "github.com/pkg/errors"

/*
Boot protocol keyboard report, as defined in Appendix B of the HID 1.11 device class definition:

	byte 0:   modifier bitmask (bit 0 left control ... bit 7 right gui)
	byte 1:   reserved
	byte 2-7: up to six keys held down

An all zero report means every key is released.
*/

const (
	ReportLength = 8
	MaxRollover  = 6
)

const (
	modifierByteIndex = 0
	keysByteIndex     = 2
)

// ErrRollover is returned when more than MaxRollover non-modifier keys are in one report
var ErrRollover = errors.New("hid: too many keys for a boot keyboard report")

// Report is a single boot keyboard input report
type Report [ReportLength]byte

// ReleaseAll is the report sent after a press to release every key
var ReleaseAll = Report{}

// NewReport builds a report with every given key held down. Repeated keys are only reported once.
func NewReport(keys ...Keycode) (Report, error) {
	var r Report
	slot := keysByteIndex
	for _, k := range keys {
		if k.IsModifier() {
			r[modifierByteIndex] |= k.modifierBit()
			continue
		}
		if r.holds(k, slot) {
			continue
		}
		if slot >= ReportLength {
			return ReleaseAll, errors.Wrapf(ErrRollover, "%d keys", len(keys))
		}
		r[slot] = byte(k)
		slot++
	}
	return r, nil
}

func (r Report) holds(k Keycode, until int) bool {
	for i := keysByteIndex; i < until; i++ {
		if r[i] == byte(k) {
			return true
		}
	}
	return false
}

// Modifiers returns the modifier bitmask
func (r Report) Modifiers() byte {
	return r[modifierByteIndex]
}

// Keys returns the non-modifier keys held in this report, in slot order
func (r Report) Keys() []Keycode {
	keys := make([]Keycode, 0, MaxRollover)
	for _, b := range r[keysByteIndex:] {
		if b == 0 {
			break
		}
		keys = append(keys, Keycode(b))
	}
	return keys
}
