package physics

import (
	"fmt"

	"github.com/tomz197/frogger/internal/config"
)

// Cell addresses a tile on the board. Row 0 is the top (water) row.
type Cell struct {
	Row, Col int
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell offset by (dRow, dCol).
func (c Cell) Add(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Valid reports whether the cell lies on the board.
func (c Cell) Valid() bool {
	return IsWithinGrid(c.Row, c.Col)
}

// PositionFromCell converts a grid cell to the pixel position of a sprite
// drawn in it, shifted by the sprite's offset.
func PositionFromCell(row, col int, offsetX, offsetY float64) Position {
	return Position{
		X: float64(col)*config.CellWidth + offsetX,
		Y: float64(row)*config.CellHeight + offsetY,
	}
}

// IsWithinGrid reports whether (row, col) addresses a cell on the board.
func IsWithinGrid(row, col int) bool {
	return row >= 0 && row < config.Rows && col >= 0 && col < config.Columns
}
