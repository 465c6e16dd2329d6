package keypad

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/zllovesuki/MacroPad/keymap"
	"github.com/zllovesuki/MacroPad/util"

	"github.com/pkg/errors"
	"github.com/thejerf/suture/v4"
)

const (
	inputReportLength = 3
)

// DefaultDebounce is the window in which a key re-triggering is treated as contact bounce
const DefaultDebounce = time.Millisecond * 20

// Listener reads key bitmaps from the keypad and delivers each newly pressed key, lowest index first
type Listener struct {
	source   io.Reader
	eventCh  chan<- int
	debounce *util.Debouncer
	held     uint16
	now      func() time.Time
}

var _ suture.Service = &Listener{}

// NewListener will read input reports from source and send key presses to eventCh
func NewListener(source io.Reader, eventCh chan<- int, debounce time.Duration) *Listener {
	return &Listener{
		source:   source,
		eventCh:  eventCh,
		debounce: util.NewDebouncer(debounce),
		now:      time.Now,
	}
}

func (l *Listener) String() string {
	return "KeypadListener"
}

// Serve satisfies suture.Service. A read error is returned so the supervisor can restart the listener.
func (l *Listener) Serve(haltCtx context.Context) error {
	log.Println("[keypad] starting listener loop")
	buf := make([]byte, inputReportLength)
	for {
		select {
		case <-haltCtx.Done():
			log.Println("[keypad] exiting listener loop")
			return nil
		default:
		}

		n, err := l.source.Read(buf)
		if err != nil {
			if haltCtx.Err() != nil {
				log.Println("[keypad] exiting listener loop")
				return nil
			}
			return errors.Wrap(err, "[keypad] cannot read input report")
		}

		for _, key := range l.presses(buf[:n]) {
			select {
			case l.eventCh <- key:
			case <-haltCtx.Done():
				return nil
			}
		}
	}
}

// presses turns one input report into the keys that went down since the previous report
func (l *Listener) presses(report []byte) []int {
	if len(report) < inputReportLength || report[0] != inputReportID {
		return nil
	}
	bitmap := uint16(report[1]) | uint16(report[2])<<8
	rising := bitmap &^ l.held
	l.held = bitmap

	if rising == 0 {
		return nil
	}
	now := l.now()
	keys := make([]int, 0, keymap.KeyCount)
	for key := 0; key < keymap.KeyCount; key++ {
		if rising&(1<<uint(key)) == 0 {
			continue
		}
		if !l.debounce.Allow(key, now) {
			log.Printf("[keypad] key %d bounced, ignoring\n", key)
			continue
		}
		keys = append(keys, key)
	}
	return keys
}
