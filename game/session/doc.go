// Package session runs one play session of the snake game.
//
// A Session owns a game engine and applies commands to it strictly one at a
// time on a single goroutine. Commands come from two sources: the tick timer
// started by Run, and whatever adapter calls Submit (normally the terminal
// key pump). After each command the session hands a snapshot to its Renderer
// and the move events to its SoundPlayer, so neither needs a lock around the
// engine.
//
// Usage:
//
//	sess := session.New(gameEngine, session.Options{
//		Tick:     200 * time.Millisecond,
//		Renderer: renderer,
//		Sounds:   player,
//		Logger:   logger,
//	})
//	go terminal.PumpEvents(ctx, screen, sess.Submit)
//	if err := sess.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// Direction memory:
//
// A tick moves the snake in the last direction that was accepted by the
// engine. A rejected key press (for example a reversal onto the neck) does
// not change it, and Reset clears it so the snake waits for the next key.
package session
