package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"cave-dungeons/systems"
)

// FrameInterval is the tick period of the terminal frontend
const FrameInterval = 16 * time.Millisecond

// Run drives a started game loop on screen until the player quits, ctx is
// cancelled or the loop fails. The caller owns screen and must Fini it.
func Run(ctx context.Context, screen tcell.Screen, loop *systems.GameStateSystem, input *KeyHold) error {
	renderer := NewRenderer(screen)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			// PollEvent returns nil once the screen is finalized
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	renderer.Render(loop.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				input.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if err := loop.Update(); err != nil {
				return errors.Wrap(err, "terminal frontend")
			}
			renderer.Render(loop.Snapshot())
		}
	}
}
