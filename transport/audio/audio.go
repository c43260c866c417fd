// Package audio plays short synthesized cues for game events.
//
// Audio is optional: when the speaker cannot be opened the Player stays
// disabled and Play is a no-op.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/wricardo/gridsnake/game/engine"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq     float64
	duration time.Duration
}

// cues maps each event to the notes played in order
var cues = map[engine.EventType][]note{
	engine.EventAte:  {{880, 60 * time.Millisecond}},
	engine.EventWin:  {{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond}, {783.99, 240 * time.Millisecond}},
	engine.EventLoss: {{220, 150 * time.Millisecond}, {146.83, 300 * time.Millisecond}},
}

// Player mixes event cues onto the speaker
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

// NewPlayer creates a disabled player; call Init to open the speaker
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. A failure leaves the player disabled.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

// Enabled reports whether cues are audible
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues the cue of every event that has one
func (p *Player) Play(events []engine.EventType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}

	for _, ev := range events {
		cue, err := Cue(ev)
		if err != nil || cue == nil {
			continue
		}
		speaker.Lock()
		p.mixer.Add(cue)
		speaker.Unlock()
	}
}

// Close silences the mixer and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.enabled = false
}

// Cue builds the streamer for ev, or nil when ev has no sound
func Cue(ev engine.EventType) (beep.Streamer, error) {
	notes, ok := cues[ev]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -2,
	}, nil
}

// CueLength returns the number of samples in the cue for ev
func CueLength(ev engine.EventType) int {
	total := 0
	for _, n := range cues[ev] {
		total += sampleRate.N(n.duration)
	}
	return total
}
