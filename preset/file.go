package preset

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/zllovesuki/MacroPad/keymap"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// FormatConstraint is the range of layout file versions this build understands
const FormatConstraint = "^1.0"

var formatConstraint = mustConstraint(FormatConstraint)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

type layoutFile struct {
	Version    string       `yaml:"version"`
	Name       string       `yaml:"name"`
	Brightness int          `yaml:"brightness"`
	Layers     []layerEntry `yaml:"layers"`
}

type layerEntry struct {
	Name string           `yaml:"name"`
	Keys map[int]keyEntry `yaml:"keys"`
}

type keyEntry struct {
	Action string   `yaml:"action"`
	Keys   []string `yaml:"keys"`
	Color  string   `yaml:"color"`
}

// Load parses a YAML layout. Every name in it must resolve, unknown fields are rejected.
func Load(r io.Reader) (*Preset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "[preset] cannot read layout")
	}

	var f layoutFile
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, errors.Wrap(err, "[preset] cannot parse layout")
	}

	if f.Version == "" {
		return nil, errors.New("[preset] layout has no version")
	}
	v, err := semver.NewVersion(f.Version)
	if err != nil {
		return nil, errors.Wrapf(err, "[preset] invalid layout version %q", f.Version)
	}
	if !formatConstraint.Check(v) {
		return nil, errors.Errorf("[preset] layout version %s does not satisfy %s", v, FormatConstraint)
	}

	if f.Name == "" {
		f.Name = "layout"
	}
	if f.Brightness == 0 {
		f.Brightness = keymap.DefaultBrightness
	}

	defs := make([]LayerDef, 0, len(f.Layers))
	for _, l := range f.Layers {
		def := LayerDef{
			Name:     l.Name,
			Bindings: make(map[int]Binding, len(l.Keys)),
		}
		for key, k := range l.Keys {
			def.Bindings[key] = Binding{
				Action: k.Action,
				Keys:   k.Keys,
				Color:  k.Color,
			}
		}
		defs = append(defs, def)
	}

	return Build(f.Name, f.Brightness, defs)
}

// LoadFile reads a layout from path
func LoadFile(path string) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "[preset] cannot open layout")
	}
	p, err := Load(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "[preset] %s", path)
	}
	log.Printf("[preset] loaded %q from %s: %d layers\n", p.Name, path, p.Layers.Len())
	return p, nil
}
