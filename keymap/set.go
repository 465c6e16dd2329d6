package keymap

import "github.com/pkg/errors"

// LayerSet is the ordered, non-empty list of layers a keypad can switch between
type LayerSet struct {
	layers []*Layer
}

// NewLayerSet checks that there is at least one layer and that every layer select
// in every layer points at a layer of the set
func NewLayerSet(layers ...*Layer) (*LayerSet, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}
	for i, l := range layers {
		if l == nil {
			return nil, errors.Errorf("keymap: nil layer at index %d is invalid", i)
		}
		for key, s := range l.slots {
			if s.Action.Kind() != KindSelectLayer {
				continue
			}
			if target := s.Action.Layer(); target < 0 || target >= len(layers) {
				return nil, errors.Wrapf(ErrLayerTarget, "layer %q key %d selects layer %d of %d", l.name, key, target, len(layers))
			}
		}
	}
	set := &LayerSet{
		layers: make([]*Layer, len(layers)),
	}
	copy(set.layers, layers)
	return set, nil
}

func (s *LayerSet) Len() int {
	return len(s.layers)
}

// Layer returns the layer at index
func (s *LayerSet) Layer(index int) (*Layer, error) {
	if index < 0 || index >= len(s.layers) {
		return nil, errors.Wrapf(ErrOutOfRange, "layer %d of %d", index, len(s.layers))
	}
	return s.layers[index], nil
}
