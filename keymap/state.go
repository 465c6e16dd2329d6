package keymap

import "fmt"

// Brightness bounds. MaxBrightness shows colors at full intensity.
const (
	MinBrightness     = 1
	MaxBrightness     = 10
	DefaultBrightness = 5
)

// State is the part of a keypad that changes while it runs
type State struct {
	ActiveLayer int
	Brightness  int
}

// NewState starts on the first layer at the given brightness, clamped into range
func NewState(brightness int) State {
	return State{
		ActiveLayer: 0,
		Brightness:  ClampBrightness(brightness),
	}
}

// ClampBrightness forces b into [MinBrightness, MaxBrightness]
func ClampBrightness(b int) int {
	if b < MinBrightness {
		return MinBrightness
	}
	if b > MaxBrightness {
		return MaxBrightness
	}
	return b
}

// AdjustBrightness moves the brightness by delta, stopping at the bounds, and returns the new level
func (s *State) AdjustBrightness(delta int) int {
	s.Brightness = ClampBrightness(s.Brightness + delta)
	return s.Brightness
}

// SelectLayer switches to index if it is one of count layers.
// Otherwise the state is left untouched and false is returned.
func (s *State) SelectLayer(index, count int) bool {
	if index < 0 || index >= count {
		return false
	}
	s.ActiveLayer = index
	return true
}

func (s State) String() string {
	return fmt.Sprintf("layer %d, brightness %d/%d", s.ActiveLayer, s.Brightness, MaxBrightness)
}
