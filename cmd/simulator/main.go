package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/zllovesuki/MacroPad/preset"
	"github.com/zllovesuki/MacroPad/simulator"
)

func main() {
	var (
		presetName = flag.String("preset", "kodi", "built-in preset to load")
		layoutPath = flag.String("layout", "", "YAML layout file, overrides -preset")
		brightness = flag.Int("brightness", 0, "starting brightness (1-10), 0 keeps the preset default")
	)
	flag.Parse()

	p, err := preset.Select(*presetName, *layoutPath, *brightness)
	if err != nil {
		log.Fatalf("[simulator] cannot load preset: %+v\n", err)
	}

	sim, err := simulator.New(p)
	if err != nil {
		log.Fatalf("[simulator] cannot create simulator: %+v\n", err)
	}

	if err := sim.Serve(context.Background()); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("[simulator] exited with error: %+v\n", err)
	}
}
