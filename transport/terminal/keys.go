package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/wricardo/gridsnake/game/engine"
	"github.com/wricardo/gridsnake/game/session"
)

// MapKey translates a key press into a session command. Keys without a
// binding report false and never reach the session.
func MapKey(key tcell.Key, r rune) (session.Command, bool) {
	switch key {
	case tcell.KeyUp:
		return session.Move(engine.Up), true
	case tcell.KeyDown:
		return session.Move(engine.Down), true
	case tcell.KeyLeft:
		return session.Move(engine.Left), true
	case tcell.KeyRight:
		return session.Move(engine.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.Quit(), true
	case tcell.KeyRune:
		return mapRune(r)
	}
	return session.Command{}, false
}

func mapRune(r rune) (session.Command, bool) {
	switch unicode.ToLower(r) {
	case 'w':
		return session.Move(engine.Up), true
	case 's':
		return session.Move(engine.Down), true
	case 'a':
		return session.Move(engine.Left), true
	case 'd':
		return session.Move(engine.Right), true
	case 'r':
		return session.Reset(), true
	case 'h':
		return session.ToggleOverlay(), true
	case 'q':
		return session.Quit(), true
	}
	return session.Command{}, false
}
