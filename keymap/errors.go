package keymap

import "github.com/pkg/errors"

var (
	// ErrOutOfRange means a key index outside [0, KeyCount) or a layer index outside the set
	ErrOutOfRange = errors.New("keymap: index out of range")
	// ErrSlotCount means a layer was not given exactly KeyCount slots
	ErrSlotCount = errors.New("keymap: wrong number of key slots")
	// ErrNoLayers means a layer set was built without layers
	ErrNoLayers = errors.New("keymap: at least one layer is required")
	// ErrLayerTarget means a SelectLayer action points at a layer that does not exist
	ErrLayerTarget = errors.New("keymap: layer select targets a missing layer")
	// ErrUnknownName means an action name is not in the catalog
	ErrUnknownName = errors.New("keymap: unknown action name")
)
