package session

import (
	"fmt"

	"github.com/wricardo/gridsnake/game/engine"
)

// CommandType identifies what a Command asks the session to do
type CommandType int

const (
	CmdMove CommandType = iota + 1
	CmdTick
	CmdReset
	CmdToggleOverlay
	CmdRedraw
	CmdQuit
)

func (t CommandType) String() string {
	switch t {
	case CmdMove:
		return "move"
	case CmdTick:
		return "tick"
	case CmdReset:
		return "reset"
	case CmdToggleOverlay:
		return "toggle_overlay"
	case CmdRedraw:
		return "redraw"
	case CmdQuit:
		return "quit"
	}
	return "unknown"
}

// Command is one request to the session loop
type Command struct {
	Type      CommandType
	Direction engine.Direction
}

func (c Command) String() string {
	if c.Type == CmdMove {
		return fmt.Sprintf("move(%s)", c.Direction)
	}
	return c.Type.String()
}

// Move requests a move in direction d
func Move(d engine.Direction) Command {
	return Command{Type: CmdMove, Direction: d}
}

// Tick requests an auto-advance in the last accepted direction
func Tick() Command { return Command{Type: CmdTick} }

// Reset requests a fresh round
func Reset() Command { return Command{Type: CmdReset} }

// ToggleOverlay requests the end-of-game overlay to flip
func ToggleOverlay() Command { return Command{Type: CmdToggleOverlay} }

// Redraw requests a render without touching the model
func Redraw() Command { return Command{Type: CmdRedraw} }

// Quit stops the session loop
func Quit() Command { return Command{Type: CmdQuit} }
