package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zllovesuki/MacroPad/system/hid"

	"github.com/pkg/errors"
)

// Catalog maps action names used in layouts to actions
type Catalog struct {
	actions map[string]Action
}

// NewCatalog copies entries into a new Catalog. Names are case insensitive.
func NewCatalog(entries map[string]Action) *Catalog {
	c := &Catalog{
		actions: make(map[string]Action, len(entries)),
	}
	for name, a := range entries {
		c.actions[normalizeName(name)] = a
	}
	return c
}

// Resolve returns the action registered under name
func (c *Catalog) Resolve(name string) (Action, error) {
	a, ok := c.actions[normalizeName(name)]
	if !ok {
		return Empty(), errors.Wrapf(ErrUnknownName, "%q", name)
	}
	return a, nil
}

// Names returns every registered name, sorted
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.actions))
	for name := range c.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MaxSelectableLayer bounds the "layer N" names in the default catalog
const MaxSelectableLayer = 9

var defaultCatalog = NewCatalog(defaultEntries())

// DefaultCatalog returns the catalog shared by the built-in presets and layout files
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func defaultEntries() map[string]Action {
	entries := map[string]Action{
		// Kodi keyboard controls: https://kodi.wiki/view/Keyboard_controls
		"context menu": Key(hid.KeyC),
		"information":  Key(hid.KeyI),
		"select":       Key(hid.KeyEnter),
		"menu":         Key(hid.KeyM),
		"back":         Key(hid.KeyBackspace),
		"right":        Key(hid.KeyRightArrow),
		"up":           Key(hid.KeyUpArrow),
		"left":         Key(hid.KeyLeftArrow),
		"down":         Key(hid.KeyDownArrow),
		"vol+":         Key(hid.KeyEquals),
		"vol-":         Key(hid.KeyMinus),
		"mute":         Key(hid.KeyF8),
		"play/pause":   Key(hid.KeySpace),
		"fast forward": Key(hid.KeyF),
		"rewind":       Key(hid.KeyR),
		"stop":         Key(hid.KeyX),

		"copy":          Chord(hid.KeyLeftControl, hid.KeyC),
		"cut":           Chord(hid.KeyLeftControl, hid.KeyX),
		"paste":         Chord(hid.KeyLeftControl, hid.KeyV),
		"undo":          Chord(hid.KeyLeftControl, hid.KeyZ),
		"redo":          Chord(hid.KeyLeftControl, hid.KeyY),
		"select all":    Chord(hid.KeyLeftControl, hid.KeyA),
		"save":          Chord(hid.KeyLeftControl, hid.KeyS),
		"find":          Chord(hid.KeyLeftControl, hid.KeyF),
		"task manager":  Chord(hid.KeyLeftControl, hid.KeyLeftShift, hid.KeyEscape),
		"lock screen":   Chord(hid.KeyLeftGUI, hid.KeyL),
		"switch window": Chord(hid.KeyLeftAlt, hid.KeyTab),
		"close window":  Chord(hid.KeyLeftAlt, hid.KeyF4),

		"brightness up":   AdjustBrightness(1),
		"brightness down": AdjustBrightness(-1),
	}
	for i := 0; i <= MaxSelectableLayer; i++ {
		entries[fmt.Sprintf("layer %d", i)] = SelectLayer(i)
	}
	return entries
}
