package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidBoard     = errors.New("invalid board config")
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	Reset()
	State() GameState
	Snapshot() Snapshot

	// Movement operations
	TryMove(d Direction) bool
	Move(d Direction) MoveResult
	CanMove(d Direction) bool

	// Overlay
	ToggleOverlay()
	OverlayVisible() bool

	// Read accessors
	Segments() []Position
	Food() Position
	Width() int
	Height() int
	Config() *BoardConfig
}

// GameEngine implements the Engine interface
type GameEngine struct {
	config  *BoardConfig
	rng     Random
	snake   *Snake
	food    Position
	state   GameState
	overlay bool
	moves   int
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *BoardConfig, rng Random) (*GameEngine, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidBoard)
	}
	if err := ValidateBoardConfig(config); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewSeededRandom(0)
	}

	e := &GameEngine{
		config: config,
		rng:    rng,
	}
	e.Reset()
	return e, nil
}

// NewEngineWithDefaults creates a new game engine on the default board
func NewEngineWithDefaults() *GameEngine {
	e := &GameEngine{
		config: DefaultBoardConfig(),
		rng:    NewSeededRandom(0),
	}
	e.Reset()
	return e
}

// Reset recreates the snake, food and state from the board config
func (e *GameEngine) Reset() {
	e.snake = NewSnake(e.config.Start)
	e.food = e.config.Food
	e.state = Continue
	e.overlay = true
	e.moves = 0
}

// State returns the current game state
func (e *GameEngine) State() GameState {
	return e.state
}

// TryMove applies one tick in direction d. It returns false when the game is
// already over, the direction is unknown, or the move would reverse onto the
// neck; the model is left untouched in those cases.
func (e *GameEngine) TryMove(d Direction) bool {
	return e.Move(d).Applied
}

// Move is TryMove with a description of what the tick did
func (e *GameEngine) Move(d Direction) MoveResult {
	result := e.move(d)
	if result.Applied {
		e.moves++
	}
	return result
}

// CanMove reports whether TryMove(d) would be applied. It says nothing about
// whether the move is safe.
func (e *GameEngine) CanMove(d Direction) bool {
	if e.state != Continue || !d.Valid() {
		return false
	}
	neck, ok := e.snake.Neck()
	return !ok || neck != e.snake.Head().Add(d)
}

// GetPossibleMoves returns all directions TryMove would accept
func (e *GameEngine) GetPossibleMoves() []Direction {
	var possible []Direction
	for _, d := range Directions {
		if e.CanMove(d) {
			possible = append(possible, d)
		}
	}
	return possible
}

// BulkMove executes moves in sequence, stopping once the game is over
func (e *GameEngine) BulkMove(moves []Direction) []bool {
	results := make([]bool, 0, len(moves))
	for _, d := range moves {
		if e.state.Terminal() {
			break
		}
		results = append(results, e.TryMove(d))
	}
	return results
}

// ToggleOverlay flips the end-of-game overlay. It only has an effect once the
// game is won or lost.
func (e *GameEngine) ToggleOverlay() {
	if e.state != Continue {
		e.overlay = !e.overlay
	}
}

// OverlayVisible returns whether the end-of-game overlay should be drawn
func (e *GameEngine) OverlayVisible() bool {
	return e.overlay
}

// Segments returns a copy of the snake body, head first
func (e *GameEngine) Segments() []Position {
	return e.snake.Positions()
}

// Length returns the snake length
func (e *GameEngine) Length() int {
	return e.snake.Len()
}

// Food returns the food position
func (e *GameEngine) Food() Position {
	return e.food
}

// Width returns the board width
func (e *GameEngine) Width() int {
	return e.config.Width
}

// Height returns the board height
func (e *GameEngine) Height() int {
	return e.config.Height
}

// Moves returns the number of applied moves since the last reset
func (e *GameEngine) Moves() int {
	return e.moves
}

// Config returns the board configuration
func (e *GameEngine) Config() *BoardConfig {
	return e.config
}

// Snapshot copies the model for rendering
func (e *GameEngine) Snapshot() Snapshot {
	return Snapshot{
		State:          e.state,
		Segments:       e.snake.Positions(),
		Food:           e.food,
		OverlayVisible: e.overlay,
		Width:          e.config.Width,
		Height:         e.config.Height,
	}
}
