package engine

import (
	"fmt"
	"strings"
)

// Validation constants
const (
	MinBoardSize = 2
	MaxBoardSize = 64
	MinTickMs    = 20
	MaxTickMs    = 5000
)

// Position represents x,y coordinates on the board
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by d's unit delta
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four movement directions
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Directions lists every valid direction in a stable order
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the unit step for d; unknown directions yield (0,0)
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Valid reports whether d is one of the four directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ParseDirection accepts full names ("up") or single letters (U/D/L/R),
// case-insensitively
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// GameState is the outcome state of the current round
type GameState int

const (
	Continue GameState = iota
	Win
	Loss
)

// Terminal reports whether no further moves are accepted
func (s GameState) Terminal() bool {
	return s == Win || s == Loss
}

func (s GameState) String() string {
	switch s {
	case Continue:
		return "CONTINUE"
	case Win:
		return "WIN"
	case Loss:
		return "LOSS"
	}
	return "UNKNOWN"
}

// BoardConfig represents a board configuration loaded from JSON
type BoardConfig struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	TickMs      int      `json:"tick_ms"`
	Start       Position `json:"start"`
	Food        Position `json:"food"`
}

// Capacity is the number of cells on the board
func (c *BoardConfig) Capacity() int {
	return c.Width * c.Height
}

// Snapshot is a copy of everything a renderer needs. It shares no memory
// with the engine.
type Snapshot struct {
	State          GameState  `json:"state"`
	Segments       []Position `json:"segments"`
	Food           Position   `json:"food"`
	OverlayVisible bool       `json:"overlay_visible"`
	Width          int        `json:"width"`
	Height         int        `json:"height"`
}

// Length returns the snake length in the snapshot
func (s Snapshot) Length() int {
	return len(s.Segments)
}

// Capacity returns the number of cells on the board
func (s Snapshot) Capacity() int {
	return s.Width * s.Height
}

// Head returns the head segment, or false for an empty snapshot
func (s Snapshot) Head() (Position, bool) {
	if len(s.Segments) == 0 {
		return Position{}, false
	}
	return s.Segments[0], true
}

// EventType names something a single move did
type EventType string

const (
	EventAte  EventType = "ate"
	EventWin  EventType = "win"
	EventLoss EventType = "loss"
)

// MoveResult describes the outcome of one TryMove call
type MoveResult struct {
	Applied bool        `json:"applied"`
	From    Position    `json:"from"`
	To      Position    `json:"to"`
	Events  []EventType `json:"events,omitempty"`
	State   GameState   `json:"state"`
}

// Has reports whether the result contains the given event
func (r MoveResult) Has(ev EventType) bool {
	for _, e := range r.Events {
		if e == ev {
			return true
		}
	}
	return false
}
