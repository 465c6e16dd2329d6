package preset

/*
Kodi remote layout. The bottom row picks the layer, the selected layer's key is lit green.

Layer 0, mimicking the Kodi Kore app remote plus volume:

	| context | up     | information | vol+ |
	| left    | select | right       | vol- |
	| back    | down   | menu        | mute |
	| [0]     | 1      | 2           | 3    |

Layer 1, playback:

	| stop    | information  | context | vol+ |
	| rewind  | play/pause   | fast fw | vol- |
	| back    | select       | menu    | mute |
	| 0       | [1]          | 2       | 3    |

Layer 2, keypad settings:

	|         |              |         | brightness up   |
	|         |              |         | brightness down |
	|         |              |         |                 |
	| 0       | 1            | [2]     | 3               |

Layer 3 is blank, for when the keypad should stay dark.
*/

const (
	kodiBrightness = 8
)

// layer select keys on the bottom row
var kodiLayerSelect = map[int]int{
	0:  0,
	4:  1,
	8:  2,
	12: 3,
}

var kodi = definition{
	brightness: kodiBrightness,
	layers: []LayerDef{
		withLayerSelect(0, LayerDef{
			Name: "remote",
			Bindings: map[int]Binding{
				1:  {Action: "back", Color: "cyan"},
				2:  {Action: "left", Color: "blue"},
				3:  {Action: "context menu", Color: "cyan"},
				5:  {Action: "down", Color: "blue"},
				6:  {Action: "select", Color: "green"},
				7:  {Action: "up", Color: "blue"},
				9:  {Action: "menu", Color: "cyan"},
				10: {Action: "right", Color: "blue"},
				11: {Action: "information", Color: "cyan"},
				13: {Action: "mute", Color: "red"},
				14: {Action: "vol-", Color: "blue"},
				15: {Action: "vol+", Color: "green"},
			},
		}),
		withLayerSelect(1, LayerDef{
			Name: "playback",
			Bindings: map[int]Binding{
				1:  {Action: "back", Color: "cyan"},
				2:  {Action: "rewind", Color: "yellow"},
				3:  {Action: "stop", Color: "red"},
				5:  {Action: "select", Color: "green"},
				6:  {Action: "play/pause", Color: "green"},
				7:  {Action: "information", Color: "cyan"},
				9:  {Action: "menu", Color: "cyan"},
				10: {Action: "fast forward", Color: "yellow"},
				11: {Action: "context menu", Color: "cyan"},
				13: {Action: "mute", Color: "red"},
				14: {Action: "vol-", Color: "blue"},
				15: {Action: "vol+", Color: "green"},
			},
		}),
		withLayerSelect(2, LayerDef{
			Name: "settings",
			Bindings: map[int]Binding{
				14: {Action: "brightness down", Color: "white"},
				15: {Action: "brightness up", Color: "white"},
			},
		}),
		withLayerSelect(3, LayerDef{
			Name:     "blank",
			Bindings: map[int]Binding{},
		}),
	},
}

// withLayerSelect adds the bottom row layer select keys to def, lighting the key of layer own
func withLayerSelect(own int, def LayerDef) LayerDef {
	bindings := make(map[int]Binding, len(def.Bindings)+len(kodiLayerSelect))
	for key, b := range def.Bindings {
		bindings[key] = b
	}
	for key, layer := range kodiLayerSelect {
		b := Binding{Action: layerAction(layer)}
		if layer == own {
			b.Color = "green"
		}
		bindings[key] = b
	}
	def.Bindings = bindings
	return def
}
