package led

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestScaleRoundsTowardZero(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		for v := 0; v <= 255; v++ {
			c := RGB(uint8(v), uint8(255-v), uint8(v/2))
			s := c.Scale(level)

			require.Equal(t, uint8(v*level/10), s.R)
			require.Equal(t, uint8((255-v)*level/10), s.G)
			require.Equal(t, uint8((v/2)*level/10), s.B)

			require.LessOrEqual(t, s.R, c.R)
			require.LessOrEqual(t, s.G, c.G)
			require.LessOrEqual(t, s.B, c.B)

			if level > 1 {
				lower := c.Scale(level - 1)
				require.LessOrEqual(t, lower.R, s.R)
				require.LessOrEqual(t, lower.G, s.G)
				require.LessOrEqual(t, lower.B, s.B)
			}
		}
	}
}

func TestScaleBounds(t *testing.T) {
	require.Equal(t, White, White.Scale(MaxLevel))
	require.Equal(t, White, White.Scale(42))
	require.Equal(t, Off, White.Scale(0))
	require.Equal(t, Off, White.Scale(-3))
	require.Equal(t, RGB(127, 127, 127), White.Scale(5))
	require.Equal(t, RGB(204, 0, 0), Red.Scale(8))
}

func TestResolve(t *testing.T) {
	c, err := Resolve("Cyan")
	require.NoError(t, err)
	require.Equal(t, Cyan, c)

	c, err = Resolve("off")
	require.NoError(t, err)
	require.True(t, c.IsOff())

	_, err = Resolve("chartreuse")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownName))

	for _, name := range Names() {
		_, err := Resolve(name)
		require.NoError(t, err)
	}
	require.Equal(t, "#00ffff", Cyan.String())
}
