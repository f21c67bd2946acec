// Package sprites names the game's sprite resources and paints placeholder
// art for them.
package sprites

import "github.com/tomz197/frogger/internal/config"

// Sprite identifiers. They double as paths relative to the asset directory.
const (
	EnemyBug   = "images/enemy-bug.png"
	CharBoy    = "images/char-boy.png"
	WaterBlock = "images/water-block.png"
	StoneBlock = "images/stone-block.png"
	GrassBlock = "images/grass-block.png"
)

// All returns every sprite id the game draws.
func All() []string {
	return []string{WaterBlock, StoneBlock, GrassBlock, EnemyBug, CharBoy}
}

// RowTile returns the tile sprite for a board row: water on top, three rows
// of road, grass below.
func RowTile(row int) string {
	switch {
	case row < config.RoadFirstRow:
		return WaterBlock
	case row <= config.RoadLastRow:
		return StoneBlock
	default:
		return GrassBlock
	}
}
