package controller

import (
	"log"

	"github.com/zllovesuki/MacroPad/keymap"

	"github.com/pkg/errors"
)

// HandlePress runs the action bound to key on the active layer.
// A key outside the grid is a driver bug and is returned as an error wrapping keymap.ErrOutOfRange.
func (c *Controller) HandlePress(key int) error {
	layer, err := c.Config.Layers.Layer(c.state.ActiveLayer)
	if err != nil {
		return errors.Wrap(err, "[controller] active layer")
	}
	slot, err := layer.Slot(key)
	if err != nil {
		return errors.Wrap(err, "[controller] press from keypad driver")
	}

	action := slot.Action
	switch action.Kind() {
	case keymap.KindKeycode:
		if err := c.Config.Keyboard.Send(action.Keycode()); err != nil {
			return errors.Wrapf(err, "[controller] cannot send %s", action.Keycode())
		}
		c.notify(EvtKeycode, key)

	case keymap.KindChord:
		if err := c.Config.Keyboard.Send(action.Chord().Keys()...); err != nil {
			return errors.Wrapf(err, "[controller] cannot send %s", action.Chord())
		}
		c.notify(EvtChord, key)

	case keymap.KindSelectLayer:
		target := action.Layer()
		if !c.state.SelectLayer(target, c.Config.Layers.Len()) {
			log.Printf("[controller] key %d selects layer %d of %d, ignoring\n", key, target, c.Config.Layers.Len())
			c.notify(EvtLayerRejected, key)
			return nil
		}
		log.Printf("[controller] layer %d selected\n", target)
		if err := c.Render(); err != nil {
			return err
		}
		c.notify(EvtLayerSelected, key)

	case keymap.KindAdjustBrightness:
		level := c.state.AdjustBrightness(action.Delta())
		log.Printf("[controller] brightness set to %d\n", level)
		if err := c.Render(); err != nil {
			return err
		}
		c.notify(EvtBrightnessChanged, key)

	case keymap.KindEmpty:
		c.notify(EvtEmpty, key)

	default:
		return errors.Errorf("[controller] key %d has unknown action kind %d", key, action.Kind())
	}

	return nil
}

// Render repaints every key with the active layer's colors scaled to the current brightness
func (c *Controller) Render() error {
	layer, err := c.Config.Layers.Layer(c.state.ActiveLayer)
	if err != nil {
		return errors.Wrap(err, "[controller] active layer")
	}
	for key, color := range layer.Colors() {
		if err := c.Config.LEDs.SetLED(key, color.Scale(c.state.Brightness)); err != nil {
			return errors.Wrapf(err, "[controller] cannot set led %d", key)
		}
	}
	return nil
}

func (c *Controller) notify(evt Event, key int) {
	if c.Config.Notifier == nil {
		return
	}
	select {
	case c.Config.Notifier <- Notification{Event: evt, Key: key, State: c.state}:
	default:
	}
}
