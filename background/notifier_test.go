package background

import (
	"context"
	"testing"
	"time"

	"github.com/zllovesuki/MacroPad/controller"
	"github.com/zllovesuki/MacroPad/keymap"

	"github.com/stretchr/testify/require"
)

func TestNotifierCounts(t *testing.T) {
	n := NewNotifier()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- n.Serve(ctx)
	}()

	state := keymap.NewState(keymap.DefaultBrightness)
	n.C <- controller.Notification{Event: controller.EvtKeycode, Key: 1, State: state}
	n.C <- controller.Notification{Event: controller.EvtKeycode, Key: 2, State: state}
	n.C <- controller.Notification{Event: controller.EvtBrightnessChanged, Key: 15, State: state}

	require.Eventually(t, func() bool {
		return n.Count(controller.EvtKeycode) == 2 && n.Count(controller.EvtBrightnessChanged) == 1
	}, time.Second, time.Millisecond*10)
	require.Equal(t, 0, n.Count(controller.EvtChord))

	cancel()
	require.NoError(t, <-done)
}
