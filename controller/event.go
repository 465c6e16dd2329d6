package controller

import (
	"fmt"

	"github.com/zllovesuki/MacroPad/keymap"
)

// Event defines the type of notification sent after a press
type Event int

// Define all the possible press outcomes
const (
	EvtKeycode Event = iota
	EvtChord
	EvtLayerSelected
	EvtBrightnessChanged
	EvtEmpty
	EvtLayerRejected
)

func (e Event) String() string {
	return [...]string{
		"Event: Keycode sent",
		"Event: Chord sent",
		"Event: Layer selected",
		"Event: Brightness changed",
		"Event: Empty key pressed",
		"Event: Layer select rejected",
	}[e]
}

// Notification carries the outcome of one press and the state right after it
type Notification struct {
	Event Event
	Key   int
	State keymap.State
}

func (n Notification) String() string {
	return fmt.Sprintf("%s (key %d, %s)", n.Event, n.Key, n.State)
}
