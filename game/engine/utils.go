package engine

import (
	"fmt"
	"strings"
	"unicode"
)

// Board glyphs used by FormatBoard
const (
	GlyphEmpty = '.'
	GlyphHead  = 'H'
	GlyphBody  = 'o'
	GlyphFood  = '*'
)

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// ParseMoves turns a compact move script such as "RRDDl u" into directions.
// Whitespace and commas are ignored.
func ParseMoves(script string) ([]Direction, error) {
	var moves []Direction
	for i, r := range script {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		d, err := ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// FormatBoard draws the snapshot as text rows. Segments outside the board
// are not drawn.
func FormatBoard(s Snapshot) []string {
	grid := make([][]rune, s.Height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(string(GlyphEmpty), s.Width))
	}

	put := func(p Position, r rune) {
		if InBounds(p, s.Width, s.Height) {
			grid[p.Y][p.X] = r
		}
	}

	if s.State == Continue {
		put(s.Food, GlyphFood)
	}
	for i := len(s.Segments) - 1; i >= 1; i-- {
		put(s.Segments[i], GlyphBody)
	}
	if head, ok := s.Head(); ok {
		put(head, GlyphHead)
	}

	rows := make([]string, len(grid))
	for y, row := range grid {
		rows[y] = string(row)
	}
	return rows
}
