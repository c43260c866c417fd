// Package terminal is the tcell presentation adapter for the snake game.
//
// It has three parts:
//   - MapKey translates key presses into session commands
//   - PumpEvents polls the screen for events and submits the mapped commands
//   - Renderer draws a snapshot: board, food, snake, status line and the
//     end-of-game overlay
//
// Each board cell is drawn two terminal columns wide so the board looks
// roughly square in most fonts.
package terminal
