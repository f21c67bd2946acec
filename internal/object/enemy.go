package object

import (
	"math/rand"

	"github.com/tomz197/frogger/internal/config"
	"github.com/tomz197/frogger/internal/physics"
	"github.com/tomz197/frogger/internal/sprites"
)

// Enemy is a bug running left to right along one of the road rows.
type Enemy struct {
	Character
	Speed float64 // Pixels per second, redrawn on every reset
	Row   int     // Road row the enemy currently runs on

	MinSpeed, MaxSpeed int
	rng                *rand.Rand
}

// NewEnemy creates an enemy already placed on a random road row, left of the
// board. A nil rng draws from the process-wide source.
func NewEnemy(rng *rand.Rand, minSpeed, maxSpeed int) *Enemy {
	e := &Enemy{
		Character: Character{Sprite: sprites.EnemyBug},
		MinSpeed:  minSpeed,
		MaxSpeed:  maxSpeed,
		rng:       rng,
	}
	e.Reset()
	return e
}

// Update moves the enemy, respawns it once it leaves the board and resets the
// player on contact. The collision test also runs on the frame of a respawn.
func (e *Enemy) Update(ctx UpdateContext) {
	e.Position.X += e.Speed * ctx.Delta.Seconds()
	if e.Position.X > config.EnemyMaxX {
		e.Reset()
		ctx.emit(EventEnemyRespawn, physics.Cell{Row: e.Row, Col: -1})
	}

	p := ctx.Player
	if p == nil {
		return
	}
	if physics.IsColliding(e.Position, p.Position, config.CollisionRadius) {
		hit := p.Cell
		p.Reset()
		ctx.emit(EventCollision, hit)
	}
}

// Reset draws a new speed and road row and places the enemy one cell left of
// column 0. Negative bounds are treated as zero so enemies never run
// backwards.
func (e *Enemy) Reset() {
	e.Speed = float64(physics.RandomInt(e.rng, max(e.MinSpeed, 0), max(e.MaxSpeed, 0)))
	e.Row = physics.RandomInt(e.rng, config.RoadFirstRow, config.RoadLastRow)
	e.Position = physics.PositionFromCell(e.Row, -1, config.EnemyOffsetX, config.EnemyOffsetY)
}
