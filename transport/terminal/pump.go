package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/wricardo/gridsnake/game/session"
)

// EventSource is the part of tcell.Screen the pump reads from
type EventSource interface {
	PollEvent() tcell.Event
}

// PumpEvents forwards mapped key presses and resize redraws to submit until
// the source is finalized, ctx is cancelled, or submit refuses a command.
// PollEvent blocks, so callers stop the pump by calling Fini on the screen.
func PumpEvents(ctx context.Context, src EventSource, submit func(session.Command) bool) {
	for {
		if ctx.Err() != nil {
			return
		}

		ev := src.PollEvent()
		if ev == nil {
			return
		}

		var cmd session.Command
		switch ev := ev.(type) {
		case *tcell.EventKey:
			mapped, ok := MapKey(ev.Key(), ev.Rune())
			if !ok {
				continue
			}
			cmd = mapped
		case *tcell.EventResize:
			cmd = session.Redraw()
		default:
			continue
		}

		if !submit(cmd) {
			return
		}
	}
}
