package keypad

import (
	"io"

	"github.com/zllovesuki/MacroPad/keymap"
	"github.com/zllovesuki/MacroPad/system/hid"
	"github.com/zllovesuki/MacroPad/system/led"

	"github.com/pkg/errors"
)

const (
	keyboardReportLength = 1 + hid.ReportLength
	ledReportLength      = 5
)

// KeyboardSink relays boot keyboard reports through the keypad to the host
type KeyboardSink struct {
	w io.Writer
}

// NewKeyboardSink writes keyboard reports to w
func NewKeyboardSink(w io.Writer) *KeyboardSink {
	return &KeyboardSink{
		w: w,
	}
}

// Send presses every key in one report, then releases all of them. Release order is left to the host.
func (k *KeyboardSink) Send(keys ...hid.Keycode) error {
	report, err := hid.NewReport(keys...)
	if err != nil {
		return err
	}
	if err := k.write(report); err != nil {
		return errors.Wrap(err, "[keypad] cannot write key press")
	}
	if err := k.write(hid.ReleaseAll); err != nil {
		return errors.Wrap(err, "[keypad] cannot write key release")
	}
	return nil
}

func (k *KeyboardSink) write(r hid.Report) error {
	buf := make([]byte, keyboardReportLength)
	buf[0] = keyboardReportID
	copy(buf[1:], r[:])
	_, err := k.w.Write(buf)
	return err
}

// LEDSink sets key backlights
type LEDSink struct {
	w io.Writer
}

// NewLEDSink writes backlight reports to w
func NewLEDSink(w io.Writer) *LEDSink {
	return &LEDSink{
		w: w,
	}
}

// SetLED writes one key's color
func (l *LEDSink) SetLED(key int, c led.Color) error {
	if key < 0 || key >= keymap.KeyCount {
		return errors.Wrapf(keymap.ErrOutOfRange, "[keypad] led %d", key)
	}
	buf := make([]byte, ledReportLength)
	buf[0] = ledReportID
	buf[1] = byte(key)
	buf[2], buf[3], buf[4] = c.R, c.G, c.B
	if _, err := l.w.Write(buf); err != nil {
		return errors.Wrapf(err, "[keypad] cannot write led %d", key)
	}
	return nil
}
