package engine

import (
	"math/rand"
	"sync"
	"time"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// SeededRandom implements Random with math/rand
type SeededRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRandom creates a SeededRandom. A zero seed uses the current time.
func NewSeededRandom(seed int64) *SeededRandom {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n), or 0 when n <= 0
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// FreeCells lists the cells of a width x height board not covered by the
// snake, in row-major order
func FreeCells(width, height int, snake *Snake) []Position {
	occupied := make(map[Position]struct{}, snake.Len())
	for _, seg := range snake.body {
		occupied[seg] = struct{}{}
	}

	capacity := width*height - len(occupied)
	if capacity < 0 {
		capacity = 0
	}
	free := make([]Position, 0, capacity)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Position{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}

// PlaceFood picks a free cell uniformly at random. It returns false when the
// snake covers the whole board.
func PlaceFood(width, height int, snake *Snake, rng Random) (Position, bool) {
	free := FreeCells(width, height, snake)
	if len(free) == 0 {
		return Position{}, false
	}
	return free[rng.Intn(len(free))], true
}
