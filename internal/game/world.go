// Package game owns the entities of a single game and drives them frame by
// frame.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/frogger/internal/config"
	"github.com/tomz197/frogger/internal/input"
	"github.com/tomz197/frogger/internal/object"
	"github.com/tomz197/frogger/internal/physics"
	"github.com/tomz197/frogger/internal/sprites"
)

// Options configures a new World. A zero or negative speed range falls back
// to the default range; zero or negative Enemies creates an empty road.
type Options struct {
	Enemies  int
	MinSpeed int
	MaxSpeed int
	Rand     *rand.Rand  // nil seeds from the clock
	Logger   *log.Logger // nil discards
	Sinks    []object.EventSink
}

// OptionsFromConfig builds world options from the game section of cfg.
func OptionsFromConfig(cfg config.GameConfig) Options {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Options{
		Enemies:  cfg.Enemies,
		MinSpeed: cfg.MinSpeed,
		MaxSpeed: cfg.MaxSpeed,
		Rand:     rand.New(rand.NewSource(seed)),
	}
}

// Stats counts gameplay events since the world was created.
type Stats struct {
	Crossings  int
	Collisions int
	Respawns   int
}

// World is the owning context of one game: its enemies, its player and the
// listeners of its events.
type World struct {
	enemies []*object.Enemy
	player  *object.Player
	objects []object.Object // Update and draw order: enemies, then the player
	stats   Stats
	sinks   []object.EventSink
	logger  *log.Logger
}

// NewWorld creates the enemies and the player.
func NewWorld(opts Options) *World {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.MinSpeed < 0 || opts.MaxSpeed < 0 {
		opts.Logger.Warn("negative enemy speed, using defaults", "min_speed", opts.MinSpeed, "max_speed", opts.MaxSpeed)
		opts.MinSpeed, opts.MaxSpeed = 0, 0
	}
	if opts.MinSpeed == 0 && opts.MaxSpeed == 0 {
		opts.MinSpeed, opts.MaxSpeed = config.DefaultMinSpeed, config.DefaultMaxSpeed
	}
	if opts.Enemies < 0 {
		opts.Logger.Warn("negative enemy count, road stays empty", "enemies", opts.Enemies)
		opts.Enemies = 0
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := &World{
		player: object.NewPlayer(),
		sinks:  opts.Sinks,
		logger: opts.Logger,
	}
	w.enemies = make([]*object.Enemy, opts.Enemies)
	for i := range w.enemies {
		w.enemies[i] = object.NewEnemy(opts.Rand, opts.MinSpeed, opts.MaxSpeed)
		w.objects = append(w.objects, w.enemies[i])
	}
	w.objects = append(w.objects, w.player)
	w.logger.Debug("world created", "enemies", opts.Enemies, "min_speed", opts.MinSpeed, "max_speed", opts.MaxSpeed)
	return w
}

// Player returns the player entity.
func (w *World) Player() *object.Player {
	return w.player
}

// Enemies returns the enemies in update order.
func (w *World) Enemies() []*object.Enemy {
	return w.enemies
}

// Stats returns the event counters.
func (w *World) Stats() Stats {
	return w.stats
}

// AddSink registers another event listener.
func (w *World) AddSink(s object.EventSink) {
	w.sinks = append(w.sinks, s)
}

// Update advances the world by dt: every enemy in order, then the player.
func (w *World) Update(dt time.Duration) {
	ctx := object.UpdateContext{
		Delta:  dt,
		Player: w.player,
		Events: w,
	}
	for _, o := range w.objects {
		o.Update(ctx)
	}
}

// HandleInput forwards a direction to the player.
func (w *World) HandleInput(dir input.Direction) {
	if w.player.HandleInput(dir) {
		w.logger.Debug("player moved", "dir", dir, "cell", w.player.Cell)
	}
}

// HandleKeyCode forwards a raw key code. Codes other than the arrows are
// ignored.
func (w *World) HandleKeyCode(code int) {
	w.HandleInput(input.DirectionFromKeyCode(code))
}

// Render draws the board tiles, the enemies and finally the player.
func (w *World) Render(d object.Drawer) {
	for row := 0; row < config.Rows; row++ {
		tile := sprites.RowTile(row)
		for col := 0; col < config.Columns; col++ {
			pos := physics.PositionFromCell(row, col, 0, 0)
			d.DrawSprite(tile, pos.X, pos.Y)
		}
	}
	for _, o := range w.objects {
		o.Render(d)
	}
}

// Notify implements object.EventSink. It counts the event and passes it on
// to the registered sinks.
func (w *World) Notify(ev object.Event) {
	switch ev.Kind {
	case object.EventCrossing:
		w.stats.Crossings++
		w.logger.Debug("player crossed", "cell", ev.Cell, "crossings", w.stats.Crossings)
	case object.EventCollision:
		w.stats.Collisions++
		w.logger.Debug("player hit", "cell", ev.Cell, "collisions", w.stats.Collisions)
	case object.EventEnemyRespawn:
		w.stats.Respawns++
	}
	for _, s := range w.sinks {
		if s != nil {
			s.Notify(ev)
		}
	}
}
