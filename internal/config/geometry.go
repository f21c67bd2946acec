package config

import "time"

// Board geometry. Sprites are laid out on a fixed grid of CellWidth x
// CellHeight pixel cells.
const (
	CellWidth  = 101
	CellHeight = 83
	Rows       = 6
	Columns    = 5
)

// Logical canvas of the desktop frontend (matches the sprite art).
const (
	CanvasWidth  = Columns * CellWidth
	CanvasHeight = 606
)

// Enemies
const (
	EnemyMaxX       = Columns * CellWidth // Past this x an enemy respawns on the left
	RoadFirstRow    = 1
	RoadLastRow     = 3
	EnemyOffsetX    = 0.0
	EnemyOffsetY    = -20.0
	DefaultEnemies  = 3
	DefaultMinSpeed = 100 // px/s
	DefaultMaxSpeed = 400 // px/s
)

// Player
const (
	PlayerStartRow = 5
	PlayerStartCol = 2
	PlayerOffsetX  = 0.0
	PlayerOffsetY  = -35.0
)

// CollisionRadius is the hit radius shared by the player and enemies.
const CollisionRadius = 40.0

// Frame timing
const (
	DefaultFPS = 60
)

// FrameTime returns the target duration of a single frame at fps.
func FrameTime(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
