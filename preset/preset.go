package preset

import (
	"sort"

	"github.com/zllovesuki/MacroPad/keymap"
	"github.com/zllovesuki/MacroPad/system/hid"
	"github.com/zllovesuki/MacroPad/system/led"

	"github.com/pkg/errors"
)

// Preset is a complete keypad configuration: the layers and the brightness to start at
type Preset struct {
	Name              string
	Layers            *keymap.LayerSet
	DefaultBrightness int
}

// Binding names what one key does and how it is lit. Action and Keys are mutually exclusive.
type Binding struct {
	Action string
	Keys   []string
	Color  string
}

// LayerDef is a named set of bindings keyed by key index
type LayerDef struct {
	Name     string
	Bindings map[int]Binding
}

type definition struct {
	brightness int
	layers     []LayerDef
}

var builtins = map[string]definition{
	"kodi":      kodi,
	"shortcuts": shortcuts,
}

// Names returns the names of the built-in presets, sorted
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get builds the built-in preset with the given name
func Get(name string) (*Preset, error) {
	def, ok := builtins[name]
	if !ok {
		return nil, errors.Errorf("[preset] no built-in preset named %q", name)
	}
	return Build(name, def.brightness, def.layers)
}

// Build resolves every binding through the default action catalog, the color
// table and the key names, and assembles the layers into a Preset
func Build(name string, brightness int, defs []LayerDef) (*Preset, error) {
	if brightness < keymap.MinBrightness || brightness > keymap.MaxBrightness {
		return nil, errors.Errorf("[preset] %s: brightness %d is outside [%d, %d]", name, brightness, keymap.MinBrightness, keymap.MaxBrightness)
	}
	catalog := keymap.DefaultCatalog()
	layers := make([]*keymap.Layer, 0, len(defs))
	for _, def := range defs {
		slots := make(map[int]keymap.KeySlot, len(def.Bindings))
		for key, b := range def.Bindings {
			slot, err := resolve(catalog, b)
			if err != nil {
				return nil, errors.Wrapf(err, "[preset] %s: layer %q key %d", name, def.Name, key)
			}
			slots[key] = slot
		}
		l, err := keymap.NewSparseLayer(def.Name, slots)
		if err != nil {
			return nil, errors.Wrapf(err, "[preset] %s", name)
		}
		layers = append(layers, l)
	}
	set, err := keymap.NewLayerSet(layers...)
	if err != nil {
		return nil, errors.Wrapf(err, "[preset] %s", name)
	}
	return &Preset{
		Name:              name,
		Layers:            set,
		DefaultBrightness: brightness,
	}, nil
}

func resolve(catalog *keymap.Catalog, b Binding) (keymap.KeySlot, error) {
	var slot keymap.KeySlot

	if b.Color != "" {
		c, err := led.Resolve(b.Color)
		if err != nil {
			return slot, err
		}
		slot.Color = c
	}

	switch {
	case b.Action != "" && len(b.Keys) > 0:
		return slot, errors.New("action and keys are mutually exclusive")
	case b.Action != "":
		a, err := catalog.Resolve(b.Action)
		if err != nil {
			return slot, err
		}
		slot.Action = a
	case len(b.Keys) > 0:
		keys := make([]hid.Keycode, 0, len(b.Keys))
		for _, name := range b.Keys {
			k, err := hid.Lookup(name)
			if err != nil {
				return slot, err
			}
			keys = append(keys, k)
		}
		// must fit in a single report
		if _, err := hid.NewReport(keys...); err != nil {
			return slot, err
		}
		if len(keys) == 1 {
			slot.Action = keymap.Key(keys[0])
		} else {
			slot.Action = keymap.Chord(keys...)
		}
	}

	return slot, nil
}

// Select loads the layout file at path when one is given, the named built-in otherwise.
// A non-zero brightness overrides the preset's default.
func Select(name, path string, brightness int) (*Preset, error) {
	var (
		p   *Preset
		err error
	)
	if path != "" {
		p, err = LoadFile(path)
	} else {
		p, err = Get(name)
	}
	if err != nil {
		return nil, err
	}
	if brightness == 0 {
		return p, nil
	}
	if brightness < keymap.MinBrightness || brightness > keymap.MaxBrightness {
		return nil, errors.Errorf("[preset] brightness %d is outside [%d, %d]", brightness, keymap.MinBrightness, keymap.MaxBrightness)
	}
	p.DefaultBrightness = brightness
	return p, nil
}
