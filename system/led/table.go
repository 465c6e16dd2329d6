package led

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownName is returned when a color name is not in the table
var ErrUnknownName = errors.New("led: unknown color name")

// Named colors
var (
	Off     = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Cyan    = RGB(0, 255, 255)
	Yellow  = RGB(255, 255, 0)
	Magenta = RGB(255, 0, 255)
	Orange  = RGB(255, 128, 0)
	Purple  = RGB(128, 0, 255)
	Pink    = RGB(255, 96, 160)
)

var table = map[string]Color{
	"off":     Off,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"cyan":    Cyan,
	"yellow":  Yellow,
	"magenta": Magenta,
	"orange":  Orange,
	"purple":  Purple,
	"pink":    Pink,
}

// Resolve returns the color registered under name
func Resolve(name string) (Color, error) {
	c, ok := table[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Off, errors.Wrapf(ErrUnknownName, "%q", name)
	}
	return c, nil
}

// Names returns the color names in the table, sorted
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
