package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zllovesuki/MacroPad/background"
	"github.com/zllovesuki/MacroPad/controller"
	"github.com/zllovesuki/MacroPad/preset"
	"github.com/zllovesuki/MacroPad/supervisor"
	"github.com/zllovesuki/MacroPad/system/keypad"

	suture "github.com/thejerf/suture/v4"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Compile time injected variables
var (
	Version = "v0.0.0-dev"
)

func main() {
	var (
		presetName = flag.String("preset", "kodi", "built-in preset to load")
		layoutPath = flag.String("layout", "", "YAML layout file, overrides -preset")
		brightness = flag.Int("brightness", 0, "starting brightness (1-10), 0 keeps the preset default")
		vendorID   = flag.Uint("vid", keypad.DefaultVendorID, "USB vendor ID of the keypad")
		productID  = flag.Uint("pid", keypad.DefaultProductID, "USB product ID of the keypad")
		iface      = flag.Int("interface", keypad.DefaultInterface, "HID interface number, -1 for the first match")
		debounce   = flag.Duration("debounce", keypad.DefaultDebounce, "window in which a repeated key press is dropped")
		dryRun     = flag.Bool("dry-run", false, "do not open the keypad, log reports instead")
		logPath    = flag.String("log", "", "write logs to this file, rotated")
		list       = flag.Bool("list", false, "list presets, actions, colors and key names, then exit")
	)
	flag.Parse()

	if *list {
		printNames(os.Stdout)
		return
	}

	if *logPath != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logPath,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		})
	}

	log.Printf("MacroPad version: %s\n", Version)

	p, err := preset.Select(*presetName, *layoutPath, *brightness)
	if err != nil {
		log.Fatalf("[supervisor] cannot load preset: %+v\n", err)
	}
	log.Printf("[supervisor] using preset %q with %d layers\n", p.Name, p.Layers.Len())

	dev, err := keypad.Open(keypad.Config{
		DryRun:    *dryRun || os.Getenv("DRY_RUN") != "",
		VendorID:  uint16(*vendorID),
		ProductID: uint16(*productID),
		Interface: *iface,
	})
	if err != nil {
		log.Fatalf("[supervisor] cannot open keypad: %+v\n", err)
	}

	events := make(chan int, 16)
	notifier := background.NewNotifier()

	ctrl, err := controller.New(controller.Config{
		Layers:            p.Layers,
		Keyboard:          keypad.NewKeyboardSink(dev),
		LEDs:              keypad.NewLEDSink(dev),
		DefaultBrightness: p.DefaultBrightness,
		Events:            events,
		Notifier:          notifier.C,
	})
	if err != nil {
		log.Fatalf("[supervisor] cannot create controller: %+v\n", err)
	}

	listener := keypad.NewListener(dev, events, *debounce)

	evtHook := supervisor.NewEventHook()

	ctx, cancel := context.WithCancel(context.Background())

	/*
		How the supervisor tree is structured:
			Listener:	system/keypad/listener.go
			Controller:	controller
			Notifier:	background/notifier.go

				rootSupervisor  +----+  Notifier
					+    +
					|    |
					|    +-> Controller
					|
					+------> Listener

		The Listener owns reads from the keypad and hands presses to the
		Controller through the events channel. Only the Controller touches
		the keypad State.
	*/

	rootSupervisor := suture.New("Supervisor", suture.Spec{
		EventHook: evtHook.Event,
	})
	rootSupervisor.Add(listener)
	rootSupervisor.Add(ctrl)
	rootSupervisor.Add(notifier)

	sigc := make(chan os.Signal, 1)

	go func() {
		supervisorErr := rootSupervisor.Serve(ctx)
		if supervisorErr != nil {
			log.Printf("[supervisor] rootSupervisor returns error: %+v\n", supervisorErr)
			sigc <- syscall.SIGTERM
		}
	}()

	signal.Notify(
		sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)

	sig := <-sigc
	log.Printf("[supervisor] signal received: %+v\n", sig)

	cancel()
	if err := dev.Close(); err != nil {
		log.Printf("[supervisor] cannot close keypad: %+v\n", err)
	}
	time.Sleep(time.Millisecond * 500) // grace period for the services to exit
}
