// Package sound plays short effects for gameplay events.
package sound

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/frogger/internal/object"
)

// SampleRate of every effect.
const SampleRate = beep.SampleRate(44100)

// Effect identifies a sound.
type Effect int

const (
	EffectCrossing  Effect = iota + 1 // Rising two-tone chirp
	EffectCollision                   // Low buzz
)

// Effect timings
const (
	chirpLow      = 80 * time.Millisecond
	chirpHigh     = 120 * time.Millisecond
	buzzDuration  = 200 * time.Millisecond
	buzzFrequency = 110.0
)

// ErrUnknownEffect is returned by Streamer for effects it cannot build.
var ErrUnknownEffect = errors.New("unknown sound effect")

// Player turns gameplay events into sounds. It stays silent until Init
// succeeds.
type Player struct {
	mu     sync.Mutex
	ready  bool
	logger *log.Logger
}

// NewPlayer creates a silent player. A nil logger discards.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{logger: logger}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Close releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// Notify implements object.EventSink.
func (p *Player) Notify(ev object.Event) {
	switch ev.Kind {
	case object.EventCrossing:
		p.Play(EffectCrossing)
	case object.EventCollision:
		p.Play(EffectCollision)
	}
}

// Play starts effect e without waiting for it to finish.
func (p *Player) Play(e Effect) {
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()
	if !ready {
		return
	}

	s, err := Streamer(e, SampleRate)
	if err != nil {
		p.logger.Warn("sound effect", "effect", e, "err", err)
		return
	}
	speaker.Play(s)
}

// Streamer builds the samples of effect e at sample rate sr.
func Streamer(e Effect, sr beep.SampleRate) (beep.Streamer, error) {
	switch e {
	case EffectCrossing:
		low, err := generators.SineTone(sr, 660)
		if err != nil {
			return nil, fmt.Errorf("crossing tone: %w", err)
		}
		high, err := generators.SineTone(sr, 990)
		if err != nil {
			return nil, fmt.Errorf("crossing tone: %w", err)
		}
		return quieter(beep.Seq(
			beep.Take(sr.N(chirpLow), low),
			beep.Take(sr.N(chirpHigh), high),
		)), nil
	case EffectCollision:
		buzz, err := generators.SquareTone(sr, buzzFrequency)
		if err != nil {
			return nil, fmt.Errorf("collision tone: %w", err)
		}
		return quieter(beep.Take(sr.N(buzzDuration), buzz)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEffect, e)
	}
}

// quieter halves the amplitude of s.
func quieter(s beep.Streamer) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: -1}
}
