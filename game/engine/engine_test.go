package engine

import (
	"testing"
)

// queueRandom returns queued values in order, then zeros
type queueRandom struct {
	values []int
}

func (r *queueRandom) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func createTestEngine(t *testing.T, config *BoardConfig, values ...int) *GameEngine {
	t.Helper()
	if config == nil {
		config = DefaultBoardConfig()
	}
	engine, err := NewEngine(config, &queueRandom{values: values})
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return engine
}

func tinyBoard() *BoardConfig {
	return &BoardConfig{
		Name:   "tiny",
		Width:  2,
		Height: 2,
		TickMs: 100,
		Start:  Position{X: 0, Y: 0},
		Food:   Position{X: 1, Y: 0},
	}
}

func moveN(t *testing.T, e *GameEngine, d Direction, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if !e.TryMove(d) {
			t.Fatalf("move %d %s was rejected", i+1, d)
		}
	}
}

func TestNewEngine(t *testing.T) {
	engine := createTestEngine(t, nil)

	if engine.State() != Continue {
		t.Errorf("Expected initial state CONTINUE, got %s", engine.State())
	}
	if engine.Length() != 1 {
		t.Errorf("Expected initial length 1, got %d", engine.Length())
	}
	if got := engine.Segments()[0]; got != (Position{X: 3, Y: 7}) {
		t.Errorf("Expected snake to start at (3,7), got %s", got)
	}
	if engine.Food() != (Position{X: 13, Y: 7}) {
		t.Errorf("Expected food at (13,7), got %s", engine.Food())
	}
	if !engine.OverlayVisible() {
		t.Error("Expected overlay to be visible after reset")
	}
	if engine.Width() != 17 || engine.Height() != 15 {
		t.Errorf("Expected 17x15 board, got %dx%d", engine.Width(), engine.Height())
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	config := DefaultBoardConfig()
	config.Name = ""

	if _, err := NewEngine(config, nil); err == nil {
		t.Error("Expected error for invalid config")
	}
	if _, err := NewEngine(nil, nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestNewEngineWithDefaults(t *testing.T) {
	engine := NewEngineWithDefaults()
	if engine == nil {
		t.Fatal("Expected engine to be non-nil")
	}
	if engine.Config().Name != "classic" {
		t.Errorf("Expected classic board, got %q", engine.Config().Name)
	}
}

func TestReset_Invariants(t *testing.T) {
	engine := createTestEngine(t, nil)
	moveN(t, engine, Right, 10)
	engine.TryMove(Up)

	engine.Reset()

	if engine.Length() != 1 {
		t.Errorf("Expected length 1 after reset, got %d", engine.Length())
	}
	if engine.State() != Continue {
		t.Errorf("Expected CONTINUE after reset, got %s", engine.State())
	}
	if engine.Food() == engine.Segments()[0] {
		t.Error("Food must not share the snake's cell after reset")
	}
	if engine.Moves() != 0 {
		t.Errorf("Expected move counter to reset, got %d", engine.Moves())
	}
}

func TestTryMove_DirectionMapping(t *testing.T) {
	tests := []struct {
		direction Direction
		deltaX    int
		deltaY    int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}

	for _, test := range tests {
		t.Run(test.direction.String(), func(t *testing.T) {
			engine := createTestEngine(t, nil)
			start := engine.Segments()[0]

			if !engine.TryMove(test.direction) {
				t.Fatalf("Expected move %s to be applied", test.direction)
			}

			head := engine.Segments()[0]
			if head.X != start.X+test.deltaX || head.Y != start.Y+test.deltaY {
				t.Errorf("Move %s: expected (%d,%d), got %s",
					test.direction, start.X+test.deltaX, start.Y+test.deltaY, head)
			}
		})
	}
}

func TestTryMove_InvalidDirection(t *testing.T) {
	engine := createTestEngine(t, nil)
	before := engine.Snapshot()

	if engine.TryMove(Direction(0)) {
		t.Error("Expected unknown direction to be rejected")
	}
	if engine.TryMove(Direction(42)) {
		t.Error("Expected unknown direction to be rejected")
	}
	if engine.Segments()[0] != before.Segments[0] {
		t.Error("Position should not change for an unknown direction")
	}
}

func TestTryMove_Growth(t *testing.T) {
	engine := createTestEngine(t, nil)

	// Food sits ten cells to the right of the start cell
	moveN(t, engine, Right, 9)
	if engine.Length() != 1 {
		t.Fatalf("Expected no growth before reaching food, got length %d", engine.Length())
	}

	result := engine.Move(Right)
	if !result.Applied || !result.Has(EventAte) {
		t.Fatalf("Expected an applied move with an ate event, got %+v", result)
	}
	if engine.Length() != 2 {
		t.Errorf("Expected length 2 after eating, got %d", engine.Length())
	}

	segments := engine.Segments()
	if segments[0] != (Position{X: 13, Y: 7}) || segments[1] != (Position{X: 12, Y: 7}) {
		t.Errorf("Unexpected body after growth: %v", segments)
	}
	for _, seg := range segments {
		if seg == engine.Food() {
			t.Errorf("New food %s placed on the snake", engine.Food())
		}
	}
	// queueRandom yields 0, so the first free cell in row-major order
	if engine.Food() != (Position{X: 0, Y: 0}) {
		t.Errorf("Expected food at (0,0), got %s", engine.Food())
	}
}

func TestTryMove_ReversalGuard(t *testing.T) {
	engine := createTestEngine(t, nil)
	moveN(t, engine, Right, 10)
	if engine.Length() != 2 {
		t.Fatalf("Expected length 2, got %d", engine.Length())
	}

	before := engine.Snapshot()
	if engine.TryMove(Left) {
		t.Error("Expected reversal onto the neck to be rejected")
	}
	after := engine.Snapshot()

	if after.Food != before.Food || after.State != before.State {
		t.Error("Rejected reversal must not change food or state")
	}
	for i := range before.Segments {
		if before.Segments[i] != after.Segments[i] {
			t.Fatalf("Rejected reversal changed segment %d: %s -> %s", i, before.Segments[i], after.Segments[i])
		}
	}

	if engine.CanMove(Left) {
		t.Error("CanMove should report the reversal as blocked")
	}
	if got := len(engine.GetPossibleMoves()); got != 3 {
		t.Errorf("Expected 3 possible moves, got %d", got)
	}
}

func TestTryMove_SingleSegmentMayReverse(t *testing.T) {
	engine := createTestEngine(t, nil)
	moveN(t, engine, Right, 1)
	if !engine.TryMove(Left) {
		t.Error("A one-segment snake has no neck and may reverse")
	}
}

func TestTryMove_BoundaryLoss(t *testing.T) {
	engine := createTestEngine(t, nil)

	moveN(t, engine, Right, 13)
	if head := engine.Segments()[0]; head != (Position{X: 16, Y: 7}) {
		t.Fatalf("Expected head at (16,7), got %s", head)
	}
	if engine.State() != Continue {
		t.Fatalf("Expected CONTINUE on the last column, got %s", engine.State())
	}

	result := engine.Move(Right)
	if !result.Applied {
		t.Error("Expected the board-exiting move to be applied")
	}
	if head := engine.Segments()[0]; head != (Position{X: 17, Y: 7}) {
		t.Errorf("Expected head at (17,7), got %s", head)
	}
	if engine.State() != Loss {
		t.Errorf("Expected LOSS, got %s", engine.State())
	}
	if !result.Has(EventLoss) {
		t.Error("Expected a loss event")
	}
}

func TestTryMove_SelfCollisionLoss(t *testing.T) {
	engine := createTestEngine(t, nil)
	engine.snake = &Snake{body: []Position{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6},
	}}

	if !engine.TryMove(Down) {
		t.Fatal("Expected the colliding move to be applied")
	}
	if engine.State() != Loss {
		t.Errorf("Expected LOSS after running into the body, got %s", engine.State())
	}
	if head := engine.Segments()[0]; head != (Position{X: 5, Y: 6}) {
		t.Errorf("Expected head at (5,6), got %s", head)
	}
}

func TestTryMove_ChasingTailIsSafe(t *testing.T) {
	engine := createTestEngine(t, nil)
	engine.snake = &Snake{body: []Position{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6},
	}}

	if !engine.TryMove(Down) {
		t.Fatal("Expected move to be applied")
	}
	if engine.State() != Continue {
		t.Errorf("Moving into the vacated tail cell should not lose, got %s", engine.State())
	}
}

func TestTryMove_Win(t *testing.T) {
	// Second placement picks index 1 of [(0,1) (1,1)]
	engine := createTestEngine(t, tinyBoard(), 1)

	steps := []struct {
		direction Direction
		length    int
		state     GameState
	}{
		{Right, 2, Continue},
		{Down, 3, Continue},
		{Left, 4, Win},
	}

	for i, step := range steps {
		if !engine.TryMove(step.direction) {
			t.Fatalf("step %d: move %s rejected", i+1, step.direction)
		}
		if engine.Length() != step.length {
			t.Errorf("step %d: expected length %d, got %d", i+1, step.length, engine.Length())
		}
		if engine.State() != step.state {
			t.Errorf("step %d: expected %s, got %s", i+1, step.state, engine.State())
		}
	}
}

func TestTerminalStateRejectsMoves(t *testing.T) {
	engine := createTestEngine(t, tinyBoard(), 1)
	engine.BulkMove([]Direction{Right, Down, Left})
	if engine.State() != Win {
		t.Fatalf("Expected WIN, got %s", engine.State())
	}

	before := engine.Snapshot()
	for _, d := range Directions {
		for i := 0; i < 3; i++ {
			if engine.TryMove(d) {
				t.Errorf("Expected %s to be rejected after the game ended", d)
			}
		}
	}
	after := engine.Snapshot()
	if after.Food != before.Food || after.Length() != before.Length() {
		t.Error("Rejected moves must not mutate the model")
	}
	if len(engine.GetPossibleMoves()) != 0 {
		t.Error("No moves should be possible after the game ended")
	}
}

func TestEvaluate_LossTakesPrecedence(t *testing.T) {
	engine := createTestEngine(t, tinyBoard())
	engine.snake = &Snake{body: []Position{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0},
	}}

	if got := engine.evaluate(); got != Loss {
		t.Errorf("Expected LOSS when a full-length body overlaps, got %s", got)
	}
}

func TestToggleOverlay(t *testing.T) {
	engine := createTestEngine(t, nil)

	engine.ToggleOverlay()
	if !engine.OverlayVisible() {
		t.Error("Toggle must have no effect while the game continues")
	}

	moveN(t, engine, Right, 14)
	if engine.State() != Loss {
		t.Fatalf("Expected LOSS, got %s", engine.State())
	}

	engine.ToggleOverlay()
	if engine.OverlayVisible() {
		t.Error("Expected overlay hidden after toggle")
	}
	engine.ToggleOverlay()
	if !engine.OverlayVisible() {
		t.Error("Expected overlay visible after second toggle")
	}

	engine.ToggleOverlay()
	engine.Reset()
	if !engine.OverlayVisible() {
		t.Error("Reset must make the overlay visible again")
	}
}

func TestBulkMove_StopsOnGameOver(t *testing.T) {
	engine := createTestEngine(t, nil)

	moves := make([]Direction, 20)
	for i := range moves {
		moves[i] = Right
	}
	results := engine.BulkMove(moves)

	if len(results) != 14 {
		t.Errorf("Expected 14 executed moves, got %d", len(results))
	}
	if engine.State() != Loss {
		t.Errorf("Expected LOSS, got %s", engine.State())
	}
}

func TestInvariants_RandomPlay(t *testing.T) {
	config := &BoardConfig{
		Name:   "small",
		Width:  6,
		Height: 5,
		TickMs: 100,
		Start:  Position{X: 1, Y: 2},
		Food:   Position{X: 4, Y: 2},
	}
	engine, err := NewEngine(config, NewSeededRandom(7))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	driver := NewSeededRandom(99)

	for i := 0; i < 2000; i++ {
		engine.TryMove(Directions[driver.Intn(len(Directions))])

		n := engine.Length()
		if n < 1 || n > config.Capacity() {
			t.Fatalf("iteration %d: length %d out of range", i, n)
		}
		if engine.State() == Continue {
			for _, seg := range engine.Segments() {
				if seg == engine.Food() {
					t.Fatalf("iteration %d: food %s on the snake", i, engine.Food())
				}
			}
		} else {
			engine.Reset()
		}
	}
}
