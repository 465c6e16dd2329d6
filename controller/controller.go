package controller

import (
	"context"
	"log"

	"github.com/zllovesuki/MacroPad/keymap"
	"github.com/zllovesuki/MacroPad/system/hid"
	"github.com/zllovesuki/MacroPad/system/led"

	"github.com/pkg/errors"
	"github.com/thejerf/suture/v4"
)

// Keyboard receives the keycodes a press resolves to. All keys of one call are reported as held together.
type Keyboard interface {
	Send(keys ...hid.Keycode) error
}

// LEDs receives the display color of one key
type LEDs interface {
	SetLED(key int, c led.Color) error
}

// Config contains the configurations for the controller
type Config struct {
	Layers   *keymap.LayerSet
	Keyboard Keyboard
	LEDs     LEDs

	DefaultBrightness int

	// Events delivers debounced key presses. Only required by Serve.
	Events <-chan int
	// Notifier, if set, receives a Notification after every press. Sends never block.
	Notifier chan<- Notification
}

// Controller resolves key presses against the active layer and keeps the LEDs in sync with its State
type Controller struct {
	Config

	state keymap.State
}

var _ suture.Service = &Controller{}

// New validates the configuration and returns a Controller on the first layer
func New(conf Config) (*Controller, error) {
	if conf.Layers == nil {
		return nil, errors.New("[controller] nil Layers is invalid")
	}
	if conf.Keyboard == nil {
		return nil, errors.New("[controller] nil Keyboard is invalid")
	}
	if conf.LEDs == nil {
		return nil, errors.New("[controller] nil LEDs is invalid")
	}
	if conf.DefaultBrightness < keymap.MinBrightness || conf.DefaultBrightness > keymap.MaxBrightness {
		return nil, errors.Errorf("[controller] default brightness %d is outside [%d, %d]", conf.DefaultBrightness, keymap.MinBrightness, keymap.MaxBrightness)
	}
	return &Controller{
		Config: conf,
		state:  keymap.NewState(conf.DefaultBrightness),
	}, nil
}

// State returns a snapshot of the active layer and brightness
func (c *Controller) State() keymap.State {
	return c.state
}

// Initialize paints the LEDs for the starting state
func (c *Controller) Initialize() error {
	log.Printf("[controller] starting with %s\n", c.state)
	return c.Render()
}

func (c *Controller) String() string {
	return "Controller"
}

// Serve satisfies suture.Service. Presses are handled one at a time in the order they arrive.
// Any error from a press is unrecoverable and terminates the supervisor tree.
func (c *Controller) Serve(haltCtx context.Context) error {
	if c.Config.Events == nil {
		return errors.New("[controller] nil Events is invalid")
	}

	log.Println("[controller] starting event loop")

	if err := c.Initialize(); err != nil {
		log.Printf("[controller] cannot paint initial state: %+v\n", err)
		return suture.ErrTerminateSupervisorTree
	}

	for {
		select {
		case key, ok := <-c.Config.Events:
			if !ok {
				log.Println("[controller] event channel closed")
				return suture.ErrDoNotRestart
			}
			if err := c.HandlePress(key); err != nil {
				log.Printf("[controller] unrecoverable error in event loop: %+v\n", err)
				return suture.ErrTerminateSupervisorTree
			}
		case <-haltCtx.Done():
			log.Println("[controller] exiting event loop")
			return nil
		}
	}
}
