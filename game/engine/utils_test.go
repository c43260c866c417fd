package engine

import "testing"

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("RR d, l U")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []Direction{Right, Right, Down, Left, Up}
	if len(moves) != len(want) {
		t.Fatalf("Expected %d moves, got %d", len(want), len(moves))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d: expected %s, got %s", i, want[i], moves[i])
		}
	}

	if _, err := ParseMoves("RRX"); err == nil {
		t.Error("Expected error for unknown move letter")
	}
}

func TestFormatBoard(t *testing.T) {
	snap := Snapshot{
		State:    Continue,
		Segments: []Position{{X: 1, Y: 0}, {X: 0, Y: 0}},
		Food:     Position{X: 2, Y: 1},
		Width:    3,
		Height:   2,
	}

	rows := FormatBoard(snap)
	want := []string{"oH.", "..*"}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], rows[i])
		}
	}
}

func TestFormatBoard_HeadOffBoard(t *testing.T) {
	snap := Snapshot{
		State:    Loss,
		Segments: []Position{{X: 3, Y: 0}, {X: 2, Y: 0}},
		Food:     Position{X: 0, Y: 1},
		Width:    3,
		Height:   2,
	}

	rows := FormatBoard(snap)
	if rows[0] != "..o" || rows[1] != "..." {
		t.Errorf("Unexpected rows %q", rows)
	}
}

func TestManhattanDistance(t *testing.T) {
	if d := ManhattanDistance(Position{X: 1, Y: 1}, Position{X: 4, Y: -1}); d != 5 {
		t.Errorf("Expected 5, got %d", d)
	}
}
