package object

import "github.com/tomz197/frogger/internal/physics"

// EventKind identifies what happened during an update.
type EventKind int

const (
	// EventCrossing fires when the player reaches the water row.
	EventCrossing EventKind = iota + 1
	// EventCollision fires when an enemy hits the player.
	EventCollision
	// EventEnemyRespawn fires when an enemy leaves the board on the right.
	EventEnemyRespawn
)

func (k EventKind) String() string {
	switch k {
	case EventCrossing:
		return "crossing"
	case EventCollision:
		return "collision"
	case EventEnemyRespawn:
		return "enemy_respawn"
	default:
		return "unknown"
	}
}

// Event is a gameplay notification. Cell is the player's cell for crossings
// and collisions, and the new road cell (column -1) for respawns.
type Event struct {
	Kind EventKind
	Cell physics.Cell
}

// EventSink consumes gameplay events. Notify is called synchronously from
// the update pass and must not block.
type EventSink interface {
	Notify(ev Event)
}

// EventFunc adapts a plain function to an EventSink.
type EventFunc func(ev Event)

// Notify calls f(ev).
func (f EventFunc) Notify(ev Event) {
	f(ev)
}
