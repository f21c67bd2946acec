package object

import (
	"github.com/tomz197/frogger/internal/config"
	"github.com/tomz197/frogger/internal/input"
	"github.com/tomz197/frogger/internal/physics"
	"github.com/tomz197/frogger/internal/sprites"
)

// Player is the character moved by the keyboard. Cell is authoritative;
// Position is always derived from it.
type Player struct {
	Character
	Cell physics.Cell
}

// NewPlayer creates a player on the start cell.
func NewPlayer() *Player {
	p := &Player{
		Character: Character{Sprite: sprites.CharBoy},
	}
	p.Reset()
	return p
}

// Update sends the player back to the start once it reaches the water.
func (p *Player) Update(ctx UpdateContext) {
	if p.Cell.Row != 0 {
		return
	}
	ctx.emit(EventCrossing, p.Cell)
	p.Reset()
}

// HandleInput moves the player one cell in dir. Moves off the board and
// DirNone are ignored. Reports whether the player moved.
func (p *Player) HandleInput(dir input.Direction) bool {
	next := p.Cell
	switch dir {
	case input.DirLeft:
		next = next.Add(0, -1)
	case input.DirUp:
		next = next.Add(-1, 0)
	case input.DirRight:
		next = next.Add(0, 1)
	case input.DirDown:
		next = next.Add(1, 0)
	default:
		return false
	}
	return p.MoveToGridCell(next.Row, next.Col)
}

// MoveToGridCell places the player on (row, col) if the cell is on the
// board. Otherwise nothing changes.
func (p *Player) MoveToGridCell(row, col int) bool {
	if !physics.IsWithinGrid(row, col) {
		return false
	}
	p.Cell = physics.Cell{Row: row, Col: col}
	p.Position = physics.PositionFromCell(row, col, config.PlayerOffsetX, config.PlayerOffsetY)
	return true
}

// Reset moves the player to the start cell.
func (p *Player) Reset() {
	p.MoveToGridCell(config.PlayerStartRow, config.PlayerStartCol)
}
