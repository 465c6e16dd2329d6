package keymap

import (
	"testing"

	"github.com/zllovesuki/MacroPad/system/hid"
	"github.com/zllovesuki/MacroPad/system/led"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestActionVariants(t *testing.T) {
	var zero Action
	require.Equal(t, KindEmpty, zero.Kind())
	require.Equal(t, Empty(), zero)

	a := Key(hid.KeyEnter)
	require.Equal(t, KindKeycode, a.Kind())
	require.Equal(t, hid.KeyEnter, a.Keycode())
	require.Equal(t, "Keycode(enter)", a.String())

	a = Chord(hid.KeyLeftControl, hid.KeyC)
	require.Equal(t, KindChord, a.Kind())
	require.Equal(t, []hid.Keycode{hid.KeyLeftControl, hid.KeyC}, a.Chord().Keys())

	a = SelectLayer(2)
	require.Equal(t, KindSelectLayer, a.Kind())
	require.Equal(t, 2, a.Layer())
	require.Equal(t, "SelectLayer(2)", a.String())

	a = AdjustBrightness(-1)
	require.Equal(t, KindAdjustBrightness, a.Kind())
	require.Equal(t, -1, a.Delta())
	require.Equal(t, "AdjustBrightness(-1)", a.String())
}

func TestNewLayer(t *testing.T) {
	slots := make([]*KeySlot, KeyCount)
	slots[3] = &KeySlot{Action: Key(hid.KeyA), Color: led.Red}
	slots[15] = &KeySlot{Color: led.Blue}

	l, err := NewLayer("test", slots)
	require.NoError(t, err)
	require.Equal(t, "test", l.Name())

	s, err := l.Slot(3)
	require.NoError(t, err)
	require.Equal(t, Key(hid.KeyA), s.Action)
	require.Equal(t, led.Red, s.Color)

	s, err = l.Slot(0)
	require.NoError(t, err)
	require.Equal(t, KindEmpty, s.Action.Kind())
	require.Equal(t, led.Off, s.Color)

	s, err = l.Slot(15)
	require.NoError(t, err)
	require.Equal(t, KindEmpty, s.Action.Kind())
	require.Equal(t, led.Blue, s.Color)

	// the layer must not follow changes to the slots it was built from
	slots[3].Color = led.Green
	s, err = l.Slot(3)
	require.NoError(t, err)
	require.Equal(t, led.Red, s.Color)

	colors := l.Colors()
	require.Equal(t, led.Red, colors[3])
	require.Equal(t, led.Blue, colors[15])
}

func TestNewLayerErrors(t *testing.T) {
	_, err := NewLayer("short", make([]*KeySlot, KeyCount-1))
	require.True(t, errors.Is(err, ErrSlotCount))

	_, err = NewLayer("long", make([]*KeySlot, KeyCount+1))
	require.True(t, errors.Is(err, ErrSlotCount))

	_, err = NewSparseLayer("sparse", map[int]KeySlot{KeyCount: {}})
	require.True(t, errors.Is(err, ErrOutOfRange))

	_, err = NewSparseLayer("sparse", map[int]KeySlot{-1: {}})
	require.True(t, errors.Is(err, ErrOutOfRange))

	l, err := NewSparseLayer("sparse", nil)
	require.NoError(t, err)

	_, err = l.Slot(KeyCount)
	require.True(t, errors.Is(err, ErrOutOfRange))
	_, err = l.Slot(-1)
	require.True(t, errors.Is(err, ErrOutOfRange))
}

func TestLayerSet(t *testing.T) {
	_, err := NewLayerSet()
	require.True(t, errors.Is(err, ErrNoLayers))

	_, err = NewLayerSet(nil)
	require.Error(t, err)

	first, err := NewSparseLayer("first", map[int]KeySlot{
		0: {Action: SelectLayer(1), Color: led.Green},
	})
	require.NoError(t, err)

	// first points at a second layer that is not there
	_, err = NewLayerSet(first)
	require.True(t, errors.Is(err, ErrLayerTarget))

	second, err := NewSparseLayer("second", map[int]KeySlot{
		0: {Action: SelectLayer(0)},
	})
	require.NoError(t, err)

	set, err := NewLayerSet(first, second)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	l, err := set.Layer(1)
	require.NoError(t, err)
	require.Equal(t, "second", l.Name())

	_, err = set.Layer(2)
	require.True(t, errors.Is(err, ErrOutOfRange))
}

func TestStateBrightnessClamp(t *testing.T) {
	s := NewState(1)
	for i := 0; i < 20; i++ {
		s.AdjustBrightness(1)
		require.LessOrEqual(t, s.Brightness, MaxBrightness)
	}
	require.Equal(t, MaxBrightness, s.Brightness)

	for i := 0; i < 20; i++ {
		s.AdjustBrightness(-1)
		require.GreaterOrEqual(t, s.Brightness, MinBrightness)
	}
	require.Equal(t, MinBrightness, s.Brightness)

	require.Equal(t, MaxBrightness, NewState(99).Brightness)
	require.Equal(t, MinBrightness, NewState(0).Brightness)
	require.Equal(t, 8, NewState(8).Brightness)
}

func TestStateSelectLayer(t *testing.T) {
	s := NewState(DefaultBrightness)
	require.Equal(t, 0, s.ActiveLayer)

	require.True(t, s.SelectLayer(2, 4))
	require.Equal(t, 2, s.ActiveLayer)

	require.False(t, s.SelectLayer(4, 4))
	require.False(t, s.SelectLayer(-1, 4))
	require.Equal(t, 2, s.ActiveLayer)
}

func TestGeometry(t *testing.T) {
	row, col := Position(0)
	require.Equal(t, Rows-1, row)
	require.Equal(t, 0, col)

	row, col = Position(3)
	require.Equal(t, 0, row)
	require.Equal(t, 0, col)

	row, col = Position(12)
	require.Equal(t, Rows-1, row)
	require.Equal(t, Columns-1, col)

	for key := 0; key < KeyCount; key++ {
		row, col := Position(key)
		require.Equal(t, key, IndexAt(row, col))
	}
}

func TestCatalog(t *testing.T) {
	c := DefaultCatalog()

	a, err := c.Resolve("Play/Pause")
	require.NoError(t, err)
	require.Equal(t, Key(hid.KeySpace), a)

	a, err = c.Resolve("task manager")
	require.NoError(t, err)
	require.Equal(t, []hid.Keycode{hid.KeyLeftControl, hid.KeyLeftShift, hid.KeyEscape}, a.Chord().Keys())

	a, err = c.Resolve("layer 3")
	require.NoError(t, err)
	require.Equal(t, SelectLayer(3), a)

	a, err = c.Resolve("brightness down")
	require.NoError(t, err)
	require.Equal(t, AdjustBrightness(-1), a)

	_, err = c.Resolve("launch rockets")
	require.True(t, errors.Is(err, ErrUnknownName))

	names := c.Names()
	require.Contains(t, names, "vol+")
	require.Contains(t, names, "layer 9")
	for _, name := range names {
		_, err := c.Resolve(name)
		require.NoError(t, err)
	}
}
