package engine

// InBounds reports whether pos lies on a width x height board
func InBounds(pos Position, width, height int) bool {
	return pos.X >= 0 && pos.X < width && pos.Y >= 0 && pos.Y < height
}

// move applies one tick in direction d and reports what happened
func (e *GameEngine) move(d Direction) MoveResult {
	result := MoveResult{State: e.state}
	if e.state != Continue || !d.Valid() {
		return result
	}

	head := e.snake.Head()
	candidate := head.Add(d)
	result.From, result.To = head, candidate

	// The head may not fold back onto the neck
	if neck, ok := e.snake.Neck(); ok && neck == candidate {
		return result
	}

	prevTail := e.snake.Tail()
	e.snake.Shift(candidate)

	if candidate == e.food {
		e.snake.GrowAtTail(prevTail)
		result.Events = append(result.Events, EventAte)
		if food, ok := PlaceFood(e.config.Width, e.config.Height, e.snake, e.rng); ok {
			e.food = food
		}
	}

	e.state = e.evaluate()
	switch e.state {
	case Win:
		result.Events = append(result.Events, EventWin)
	case Loss:
		result.Events = append(result.Events, EventLoss)
	}

	result.Applied = true
	result.State = e.state
	return result
}

// evaluate derives the state from the current body. Loss is checked first.
func (e *GameEngine) evaluate() GameState {
	if e.snake.HasOverlap() || !InBounds(e.snake.Head(), e.config.Width, e.config.Height) {
		return Loss
	}
	if e.snake.Len() == e.config.Capacity() {
		return Win
	}
	return Continue
}
