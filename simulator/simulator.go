package simulator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/zllovesuki/MacroPad/controller"
	"github.com/zllovesuki/MacroPad/keymap"
	"github.com/zllovesuki/MacroPad/preset"
	"github.com/zllovesuki/MacroPad/system/hid"
	"github.com/zllovesuki/MacroPad/system/led"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rivo/tview"
)

// padRows maps computer keys onto the pad, top row first
var padRows = [keymap.Rows]string{
	"1234",
	"qwer",
	"asdf",
	"zxcv",
}

// keyForRune returns the pad key index bound to r
func keyForRune(r rune) (int, bool) {
	r = unicode.ToLower(r)
	for row, keys := range padRows {
		if col := strings.IndexRune(keys, r); col >= 0 {
			return keymap.IndexAt(row, col), true
		}
	}
	return 0, false
}

// gridLEDs paints key backgrounds on a table laid out like the pad
type gridLEDs struct {
	table *tview.Table
}

var _ controller.LEDs = &gridLEDs{}

func (g *gridLEDs) SetLED(key int, c led.Color) error {
	if key < 0 || key >= keymap.KeyCount {
		return errors.Wrapf(keymap.ErrOutOfRange, "[simulator] cannot light key %d", key)
	}
	cell := g.table.GetCell(keymap.Position(key))
	cell.SetBackgroundColor(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	if c.IsOff() {
		cell.SetTextColor(tcell.ColorGray)
	} else {
		cell.SetTextColor(tcell.ColorBlack)
	}
	return nil
}

// hostKeyboard stands in for the computer receiving the keypad's keyboard reports
type hostKeyboard struct {
	view *tview.TextView
}

var _ controller.Keyboard = &hostKeyboard{}

func (h *hostKeyboard) Send(keys ...hid.Keycode) error {
	// same limits as the USB relay
	if _, err := hid.NewReport(keys...); err != nil {
		return err
	}
	_, err := fmt.Fprintf(h.view, "sent: %s\n", hid.NewChord(keys...))
	return err
}

// Simulator runs a Controller against an on-screen keypad
type Simulator struct {
	preset *preset.Preset
	ctrl   *controller.Controller

	app      *tview.Application
	frame    *tview.Frame
	grid     *tview.Table
	hostView *tview.TextView
	logView  *tview.TextView
}

func New(p *preset.Preset) (*Simulator, error) {
	s := &Simulator{
		preset:   p,
		app:      tview.NewApplication(),
		grid:     tview.NewTable(),
		hostView: tview.NewTextView(),
		logView:  tview.NewTextView(),
	}
	ctrl, err := controller.New(controller.Config{
		Layers:            p.Layers,
		Keyboard:          &hostKeyboard{view: s.hostView},
		LEDs:              &gridLEDs{table: s.grid},
		DefaultBrightness: p.DefaultBrightness,
	})
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	s.setup()
	return s, nil
}

func (s *Simulator) setup() {
	for row := 0; row < keymap.Rows; row++ {
		for col := 0; col < keymap.Columns; col++ {
			s.grid.SetCell(row, col, tview.NewTableCell("").SetAlign(tview.AlignCenter).SetExpansion(1))
		}
	}
	s.grid.SetBorders(true).SetBordersColor(tcell.ColorDimGray)
	s.grid.Box.SetBorder(true).SetTitle(fmt.Sprintf(" %s ", s.preset.Name))
	s.hostView.SetScrollable(true).Box.SetBorder(true).SetTitle(" Host ")
	s.logView.SetScrollable(true).Box.SetBorder(true).SetTitle(" Log ")

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.hostView, 0, 1, false).
		AddItem(s.logView, 0, 2, false)

	container := tview.NewFlex().
		AddItem(s.grid, 0, 1, true).
		AddItem(right, 0, 1, false)

	s.frame = tview.NewFrame(container)
	s.app.SetInputCapture(s.handleKey)
	s.app.SetRoot(s.frame, true)
}

func (s *Simulator) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		s.app.Stop()
		return nil
	case tcell.KeyRune:
		key, ok := keyForRune(event.Rune())
		if !ok {
			return event
		}
		s.press(key)
		return nil
	}
	return event
}

// press runs on the UI goroutine, which makes it the only caller into the controller
func (s *Simulator) press(key int) {
	if err := s.ctrl.HandlePress(key); err != nil {
		s.showMessage(err.Error(), tcell.ColorRed)
		return
	}
	s.refresh()
}

func (s *Simulator) refresh() {
	state := s.ctrl.State()
	layer, err := s.preset.Layers.Layer(state.ActiveLayer)
	if err != nil {
		s.showMessage(err.Error(), tcell.ColorRed)
		return
	}
	for key := 0; key < keymap.KeyCount; key++ {
		slot, _ := layer.Slot(key)
		row, col := keymap.Position(key)
		label := ""
		if slot.Action.Kind() != keymap.KindEmpty {
			label = slot.Action.String()
		}
		s.grid.GetCell(row, col).SetText(fmt.Sprintf("%c: %s", padRows[row][col], label))
	}
	s.showMessage(fmt.Sprintf("layer %d (%s), brightness %d/%d", state.ActiveLayer, layer.Name(), state.Brightness, keymap.MaxBrightness), tcell.ColorWhite)
}

func (s *Simulator) showMessage(msg string, color tcell.Color) {
	s.frame.Clear().
		AddText("MacroPad Simulator", true, tview.AlignCenter, tcell.ColorWhite).
		AddText(tview.Escape(msg), false, tview.AlignLeft, color).
		AddText("Esc to quit", false, tview.AlignRight, tcell.ColorGray)
}

// Serve paints the starting state and runs the UI until it is closed or haltCtx is done
func (s *Simulator) Serve(haltCtx context.Context) error {
	log.SetOutput(s.logView)

	if err := s.ctrl.Initialize(); err != nil {
		return err
	}
	s.refresh()

	ctx, cancel := context.WithCancel(haltCtx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Run()
		cancel()
	}()

	<-ctx.Done()
	s.app.Stop()
	return <-errCh
}
