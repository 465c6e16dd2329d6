package led

import "fmt"

// MaxLevel is the brightness level at which colors are shown unscaled
const MaxLevel = 10

// Color holds one key's red, green and blue channel intensities
type Color struct {
	R, G, B uint8
}

// RGB is a shorthand constructor
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Scale returns the color dimmed to level tenths of its intensity, rounding toward zero.
// level is clamped to [0, MaxLevel].
func (c Color) Scale(level int) Color {
	if level < 0 {
		level = 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return Color{
		R: scaleChannel(c.R, level),
		G: scaleChannel(c.G, level),
		B: scaleChannel(c.B, level),
	}
}

func scaleChannel(v uint8, level int) uint8 {
	return uint8(int(v) * level / MaxLevel)
}

// IsOff reports whether every channel is zero
func (c Color) IsOff() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
