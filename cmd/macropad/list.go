package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/zllovesuki/MacroPad/keymap"
	"github.com/zllovesuki/MacroPad/preset"
	"github.com/zllovesuki/MacroPad/system/hid"
	"github.com/zllovesuki/MacroPad/system/led"
)

// printNames writes every name a layout file can refer to
func printNames(w io.Writer) {
	fmt.Fprintf(w, "presets: %s\n\n", strings.Join(preset.Names(), ", "))

	fmt.Fprintln(w, "actions:")
	catalog := keymap.DefaultCatalog()
	for _, name := range catalog.Names() {
		a, _ := catalog.Resolve(name)
		fmt.Fprintf(w, "  %-16s %s\n", name, a)
	}

	fmt.Fprintf(w, "\ncolors: %s\n", strings.Join(led.Names(), ", "))
	fmt.Fprintf(w, "\nkeys: %s\n", strings.Join(hid.Names(), ", "))
}
