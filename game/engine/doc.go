// Package engine provides the core game logic for the grid snake game.
//
// The engine package implements the game mechanics including:
//   - Grid bounds and the snake body model
//   - Food placement on free cells
//   - Reversal guard, growth and collision detection
//   - The CONTINUE/WIN/LOSS state machine
//   - Board configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. Snake holds the ordered body segments, and
// BoardConfig describes the board dimensions, tick period and start layout.
//
// Usage:
//
//	cfg := engine.DefaultBoardConfig()
//	gameEngine, err := engine.NewEngine(cfg, engine.NewSeededRandom(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Move the snake one cell
//	applied := gameEngine.TryMove(engine.Right)
//	snap := gameEngine.Snapshot()
//
// Game Rules:
//
// The snake moves one cell per tick. Eating food grows it by one segment and
// drops new food on a free cell. Leaving the board or running into its own
// body is a loss; filling every cell of the board is a win. Once the game is
// won or lost, moves are rejected until Reset.
package engine
