package preset

import "fmt"

/*
Desktop shortcuts. Key 0 and 4 switch between the edit and window layers,
the right column dims and brightens the keypad on both.

	| select all | find   | save  | brightness up   |
	| cut        | copy   | paste | brightness down |
	| undo       | redo   |       |                 |
	| [edit]     | window |       |                 |
*/

const (
	shortcutsBrightness = 5
)

var shortcutsCommon = map[int]Binding{
	15: {Action: "brightness up", Color: "white"},
	14: {Action: "brightness down", Color: "white"},
}

var shortcuts = definition{
	brightness: shortcutsBrightness,
	layers: []LayerDef{
		withCommon(LayerDef{
			Name: "edit",
			Bindings: map[int]Binding{
				0:  {Action: layerAction(0), Color: "green"},
				4:  {Action: layerAction(1)},
				1:  {Action: "undo", Color: "yellow"},
				5:  {Action: "redo", Color: "yellow"},
				2:  {Action: "cut", Color: "red"},
				6:  {Action: "copy", Color: "cyan"},
				10: {Action: "paste", Color: "blue"},
				3:  {Action: "select all", Color: "purple"},
				7:  {Action: "find", Color: "orange"},
				11: {Action: "save", Color: "green"},
			},
		}),
		withCommon(LayerDef{
			Name: "window",
			Bindings: map[int]Binding{
				0: {Action: layerAction(0)},
				4: {Action: layerAction(1), Color: "green"},
				1: {Action: "switch window", Color: "cyan"},
				5: {Action: "close window", Color: "red"},
				2: {Action: "task manager", Color: "magenta"},
				3: {Action: "lock screen", Color: "pink"},
				6: {Keys: []string{"left gui", "d"}, Color: "blue"},
				7: {Keys: []string{"print screen"}, Color: "white"},
			},
		}),
	},
}

func withCommon(def LayerDef) LayerDef {
	for key, b := range shortcutsCommon {
		def.Bindings[key] = b
	}
	return def
}

func layerAction(layer int) string {
	return fmt.Sprintf("layer %d", layer)
}
