package loop

import "time"

// GameState represents the current phase of a session.
type GameState int

const (
	GameStatePlaying  GameState = iota // Active gameplay
	GameStateShutdown                  // Server going away, show notice
)

// State holds the per-session state that is not part of the world.
type State struct {
	GameState     GameState
	Running       bool
	Delta         time.Duration // Frame delta time
	Idle          time.Duration // Time since the last key press
	shutdownTimer time.Duration // Remaining time of the shutdown notice
	termWidth     int
	termHeight    int
}

// NewState creates a new initialized state.
func NewState() *State {
	return &State{
		GameState: GameStatePlaying,
		Running:   true,
	}
}
