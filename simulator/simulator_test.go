package simulator

import (
	"testing"

	"github.com/zllovesuki/MacroPad/keymap"
	"github.com/zllovesuki/MacroPad/preset"
	"github.com/zllovesuki/MacroPad/system/hid"
	"github.com/zllovesuki/MacroPad/system/led"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/require"
)

func TestKeyForRune(t *testing.T) {
	expected := map[rune]int{
		'1': 3, '2': 7, '3': 11, '4': 15,
		'q': 2, 'w': 6, 'e': 10, 'r': 14,
		'a': 1, 's': 5, 'd': 9, 'f': 13,
		'z': 0, 'x': 4, 'c': 8, 'v': 12,
		'Z': 0,
	}
	for r, key := range expected {
		got, ok := keyForRune(r)
		require.True(t, ok, "%c", r)
		require.Equal(t, key, got, "%c", r)
	}

	_, ok := keyForRune('p')
	require.False(t, ok)
}

func TestGridLEDs(t *testing.T) {
	table := tview.NewTable()
	for row := 0; row < keymap.Rows; row++ {
		for col := 0; col < keymap.Columns; col++ {
			table.SetCell(row, col, tview.NewTableCell(""))
		}
	}
	g := &gridLEDs{table: table}

	require.NoError(t, g.SetLED(15, led.Red))
	require.Equal(t, tcell.NewRGBColor(255, 0, 0), table.GetCell(0, 3).BackgroundColor)

	require.NoError(t, g.SetLED(0, led.Blue.Scale(5)))
	require.Equal(t, tcell.NewRGBColor(0, 0, 127), table.GetCell(3, 0).BackgroundColor)

	err := g.SetLED(keymap.KeyCount, led.White)
	require.True(t, errors.Is(err, keymap.ErrOutOfRange))
}

func TestHostKeyboard(t *testing.T) {
	view := tview.NewTextView()
	h := &hostKeyboard{view: view}

	require.NoError(t, h.Send(hid.KeyLeftControl, hid.KeyC))
	require.Contains(t, view.GetText(true), "sent: left control+c")

	err := h.Send(hid.KeyA, hid.KeyB, hid.KeyC, hid.KeyD, hid.KeyE, hid.KeyF, hid.KeyG)
	require.True(t, errors.Is(err, hid.ErrRollover))
}

func TestPresses(t *testing.T) {
	p, err := preset.Get("kodi")
	require.NoError(t, err)

	s, err := New(p)
	require.NoError(t, err)
	require.NoError(t, s.ctrl.Initialize())
	s.refresh()

	// 'a' is key 1, backspace on the remote layer
	s.press(1)
	require.Contains(t, s.hostView.GetText(true), "sent: "+hid.KeyBackspace.String())

	// 'c' is key 8, which selects the settings layer
	s.press(8)
	require.Equal(t, 2, s.ctrl.State().ActiveLayer)

	bright := led.White.Scale(p.DefaultBrightness)
	require.Equal(t,
		tcell.NewRGBColor(int32(bright.R), int32(bright.G), int32(bright.B)),
		s.grid.GetCell(keymap.Position(15)).BackgroundColor,
	)
	require.Contains(t, s.grid.GetCell(keymap.Position(15)).Text, "AdjustBrightness(+1)")
}
