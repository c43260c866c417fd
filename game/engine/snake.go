package engine

// Snake is the ordered body of the snake, head first
type Snake struct {
	body []Position
}

// NewSnake creates a snake of length one at start
func NewSnake(start Position) *Snake {
	return &Snake{body: []Position{start}}
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the first segment
func (s *Snake) Head() Position {
	return s.body[0]
}

// Neck returns the second segment, if there is one
func (s *Snake) Neck() (Position, bool) {
	if len(s.body) < 2 {
		return Position{}, false
	}
	return s.body[1], true
}

// Tail returns the last segment
func (s *Snake) Tail() Position {
	return s.body[len(s.body)-1]
}

// Occupies reports whether any segment sits on pos
func (s *Snake) Occupies(pos Position) bool {
	for _, seg := range s.body {
		if seg == pos {
			return true
		}
	}
	return false
}

// GrowAtTail appends a segment at pos
func (s *Snake) GrowAtTail(pos Position) {
	s.body = append(s.body, pos)
}

// Shift moves the head to newHead and every other segment into the cell its
// predecessor held before the call. The previous tail cell is dropped.
func (s *Snake) Shift(newHead Position) {
	prev := newHead
	for i := range s.body {
		s.body[i], prev = prev, s.body[i]
	}
}

// HasOverlap reports whether two segments share a cell
func (s *Snake) HasOverlap() bool {
	seen := make(map[Position]struct{}, len(s.body))
	for _, seg := range s.body {
		if _, ok := seen[seg]; ok {
			return true
		}
		seen[seg] = struct{}{}
	}
	return false
}

// Positions returns a copy of the segments, head first
func (s *Snake) Positions() []Position {
	out := make([]Position, len(s.body))
	copy(out, s.body)
	return out
}
