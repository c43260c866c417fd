package session

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/wricardo/gridsnake/game/engine"
)

// DefaultQueueSize is the command buffer used when Options.QueueSize is zero
const DefaultQueueSize = 64

// Renderer draws a snapshot of the game
type Renderer interface {
	Render(snap engine.Snapshot)
}

// SoundPlayer reacts to the events of a move
type SoundPlayer interface {
	Play(events []engine.EventType)
}

// Options configures a Session
type Options struct {
	// Tick is the auto-advance period; zero disables the timer
	Tick      time.Duration
	Renderer  Renderer
	Sounds    SoundPlayer
	Logger    *log.Logger
	QueueSize int
}

// Session serializes ticks and input commands onto one engine
type Session struct {
	ID string

	engine   *engine.GameEngine
	commands chan Command
	done     chan struct{}
	tick     time.Duration
	lastDir  engine.Direction
	renderer Renderer
	sounds   SoundPlayer
	logger   *log.Logger
	rounds   int
}

// New creates a session around eng
func New(eng *engine.GameEngine, opts Options) *Session {
	queueSize := opts.QueueSize
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Session{
		ID:       uuid.NewString(),
		engine:   eng,
		commands: make(chan Command, queueSize),
		done:     make(chan struct{}),
		tick:     opts.Tick,
		renderer: opts.Renderer,
		sounds:   opts.Sounds,
		logger:   logger,
		rounds:   1,
	}
}

// Engine returns the engine driven by the session. Only touch it while Run
// is not active.
func (s *Session) Engine() *engine.GameEngine {
	return s.engine
}

// LastDirection returns the direction used by ticks, if any
func (s *Session) LastDirection() (engine.Direction, bool) {
	return s.lastDir, s.lastDir.Valid()
}

// Rounds returns how many rounds were started, counting the first
func (s *Session) Rounds() int {
	return s.rounds
}

// Done is closed when Run returns
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Submit enqueues a command. It blocks while the queue is full and returns
// false once the session has stopped.
func (s *Session) Submit(cmd Command) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.commands <- cmd:
		return true
	case <-s.done:
		return false
	}
}

// Handle applies one command synchronously. It reports the move result (the
// zero value for commands that do not move) and whether the session should
// keep running.
func (s *Session) Handle(cmd Command) (engine.MoveResult, bool) {
	var result engine.MoveResult

	switch cmd.Type {
	case CmdMove:
		result = s.engine.Move(cmd.Direction)
		if result.Applied {
			s.lastDir = cmd.Direction
		}

	case CmdTick:
		if s.lastDir.Valid() {
			result = s.engine.Move(s.lastDir)
		}

	case CmdReset:
		s.engine.Reset()
		s.lastDir = 0
		s.rounds++
		s.logger.Printf("session %s: round %d started", s.ID, s.rounds)

	case CmdToggleOverlay:
		s.engine.ToggleOverlay()

	case CmdRedraw:
		// nothing to apply

	case CmdQuit:
		return result, false

	default:
		s.logger.Printf("session %s: ignoring unknown command %d", s.ID, cmd.Type)
	}

	if result.Applied {
		s.report(result)
	}
	return result, true
}

// Run drives the session until Quit is handled or ctx is cancelled
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)

	var tickC <-chan time.Time
	if s.tick > 0 {
		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()
		tickC = ticker.C
	}

	s.logger.Printf("session %s: started (tick %s)", s.ID, s.tick)
	s.render()

	for {
		var cmd Command
		select {
		case <-ctx.Done():
			s.logger.Printf("session %s: stopped: %v", s.ID, ctx.Err())
			return nil
		case <-tickC:
			cmd = Tick()
		case cmd = <-s.commands:
		}

		result, keepRunning := s.Handle(cmd)
		if !keepRunning {
			s.logger.Printf("session %s: quit after %d rounds", s.ID, s.rounds)
			return nil
		}

		if s.sounds != nil && len(result.Events) > 0 {
			s.sounds.Play(result.Events)
		}
		s.render()
	}
}

func (s *Session) render() {
	if s.renderer != nil {
		s.renderer.Render(s.engine.Snapshot())
	}
}

// report logs terminal transitions
func (s *Session) report(result engine.MoveResult) {
	if !result.State.Terminal() {
		return
	}
	s.logger.Printf("session %s: %s at length %d/%d after %d moves (head %s)",
		s.ID, result.State, s.engine.Length(), s.engine.Config().Capacity(), s.engine.Moves(), result.To)
}
