// Package object holds the game entities: the bugs running along the road and
// the player crossing it.
package object

import (
	"time"

	"github.com/tomz197/frogger/internal/physics"
)

// Drawer is the drawing engine entities render through. Sprite is a sprite
// id as listed in the sprites package; x and y are canvas pixels of the
// sprite's top-left corner.
type Drawer interface {
	DrawSprite(sprite string, x, y float64)
}

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta  time.Duration // Time elapsed since the previous frame
	Player *Player       // Collision target of enemies, may be nil
	Events EventSink     // Receives gameplay events, may be nil
}

func (ctx UpdateContext) emit(kind EventKind, cell physics.Cell) {
	if ctx.Events != nil {
		ctx.Events.Notify(Event{Kind: kind, Cell: cell})
	}
}

// Object is an updatable and drawable game entity.
type Object interface {
	Update(ctx UpdateContext)
	Render(d Drawer)
}

// Character is the sprite and pixel position shared by every entity.
type Character struct {
	Sprite   string
	Position physics.Position
}

// Render draws the character at its position.
func (c *Character) Render(d Drawer) {
	d.DrawSprite(c.Sprite, c.Position.X, c.Position.Y)
}
