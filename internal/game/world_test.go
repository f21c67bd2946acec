package game

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/frogger/internal/config"
	"github.com/tomz197/frogger/internal/input"
	"github.com/tomz197/frogger/internal/object"
	"github.com/tomz197/frogger/internal/physics"
	"github.com/tomz197/frogger/internal/sprites"
)

type recordingDrawer struct {
	sprites []string
}

func (d *recordingDrawer) DrawSprite(sprite string, x, y float64) {
	d.sprites = append(d.sprites, sprite)
}

func newWorld(t *testing.T, enemies int, sinks ...object.EventSink) *World {
	t.Helper()
	return NewWorld(Options{
		Enemies:  enemies,
		MinSpeed: config.DefaultMinSpeed,
		MaxSpeed: config.DefaultMaxSpeed,
		Rand:     rand.New(rand.NewSource(7)),
		Sinks:    sinks,
	})
}

func TestNewWorld(t *testing.T) {
	w := newWorld(t, config.DefaultEnemies)
	require.Len(t, w.Enemies(), 3)
	for _, e := range w.Enemies() {
		assert.Equal(t, -float64(config.CellWidth), e.Position.X)
	}
	assert.Equal(t, physics.Cell{Row: 5, Col: 2}, w.Player().Cell)
	assert.Equal(t, Stats{}, w.Stats())
}

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(Options{Enemies: 2})
	for _, e := range w.Enemies() {
		assert.Equal(t, config.DefaultMinSpeed, e.MinSpeed)
		assert.Equal(t, config.DefaultMaxSpeed, e.MaxSpeed)
	}
}

func TestNewWorldRejectsNegativeOptions(t *testing.T) {
	var logs bytes.Buffer
	w := NewWorld(Options{
		Enemies:  3,
		MinSpeed: -400,
		MaxSpeed: -100,
		Rand:     rand.New(rand.NewSource(1)),
		Logger:   log.New(&logs),
	})
	require.Len(t, w.Enemies(), 3)
	for _, e := range w.Enemies() {
		assert.GreaterOrEqual(t, e.Speed, float64(config.DefaultMinSpeed))
		assert.LessOrEqual(t, e.Speed, float64(config.DefaultMaxSpeed))
	}
	assert.Contains(t, logs.String(), "negative enemy speed")

	require.NotPanics(t, func() { w = NewWorld(Options{Enemies: -1}) })
	assert.Empty(t, w.Enemies())
	w.Update(time.Second)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default().Game
	cfg.Seed = 99
	a := NewWorld(OptionsFromConfig(cfg))
	b := NewWorld(OptionsFromConfig(cfg))

	require.Len(t, a.Enemies(), cfg.Enemies)
	for i := range a.Enemies() {
		assert.Equal(t, a.Enemies()[i].Speed, b.Enemies()[i].Speed)
		assert.Equal(t, a.Enemies()[i].Row, b.Enemies()[i].Row)
	}
}

func TestCrossingScenario(t *testing.T) {
	var got []object.Event
	w := newWorld(t, 0, object.EventFunc(func(ev object.Event) { got = append(got, ev) }))

	for i := 0; i < 4; i++ {
		w.HandleInput(input.DirUp)
	}
	assert.Equal(t, physics.Cell{Row: 1, Col: 2}, w.Player().Cell)

	w.HandleKeyCode(input.KeyCodeUp)
	assert.Equal(t, physics.Cell{Row: 0, Col: 2}, w.Player().Cell)

	w.Update(time.Second / 60)
	assert.Equal(t, physics.Cell{Row: 5, Col: 2}, w.Player().Cell)
	assert.Equal(t, 1, w.Stats().Crossings)
	require.Len(t, got, 1)
	assert.Equal(t, object.EventCrossing, got[0].Kind)
}

func TestIgnoredKeyCodes(t *testing.T) {
	w := newWorld(t, 0)
	w.HandleKeyCode(13)
	w.HandleKeyCode(32)
	assert.Equal(t, physics.Cell{Row: 5, Col: 2}, w.Player().Cell)
}

func TestCollisionIsCounted(t *testing.T) {
	w := newWorld(t, 1)
	w.HandleInput(input.DirUp)
	w.HandleInput(input.DirUp)
	w.HandleInput(input.DirUp)
	e := w.Enemies()[0]
	e.Speed = 0
	e.Position = w.Player().Position

	w.Update(time.Second / 60)

	assert.Equal(t, physics.Cell{Row: 5, Col: 2}, w.Player().Cell)
	assert.Equal(t, 1, w.Stats().Collisions)
}

func TestRespawnIsCounted(t *testing.T) {
	w := newWorld(t, 2)
	w.Update(10 * time.Second)
	assert.Equal(t, 2, w.Stats().Respawns)
}

func TestEnemiesUpdateBeforePlayer(t *testing.T) {
	// The player reaching the water on the same frame an enemy would hit it
	// is a collision, not a crossing.
	w := newWorld(t, 1)
	require.True(t, w.Player().MoveToGridCell(0, 2))
	e := w.Enemies()[0]
	e.Speed = 0
	e.Position = w.Player().Position

	w.Update(0)
	assert.Equal(t, Stats{Collisions: 1}, w.Stats())
}

func TestRenderOrder(t *testing.T) {
	w := newWorld(t, 2)
	d := &recordingDrawer{}
	w.Render(d)

	tiles := config.Rows * config.Columns
	require.Len(t, d.sprites, tiles+3)
	for i := 0; i < config.Columns; i++ {
		assert.Equal(t, sprites.WaterBlock, d.sprites[i])
	}
	assert.Equal(t, sprites.StoneBlock, d.sprites[config.Columns])
	assert.Equal(t, sprites.GrassBlock, d.sprites[tiles-1])
	assert.Equal(t, []string{sprites.EnemyBug, sprites.EnemyBug, sprites.CharBoy}, d.sprites[tiles:])
}

func TestEventsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	w := NewWorld(Options{Rand: rand.New(rand.NewSource(1)), Logger: logger})

	w.Player().MoveToGridCell(0, 0)
	w.Update(0)
	assert.Contains(t, buf.String(), "player crossed")
}

func TestAddSinkSkipsNil(t *testing.T) {
	w := newWorld(t, 0, nil)
	n := 0
	w.AddSink(object.EventFunc(func(object.Event) { n++ }))
	w.Player().MoveToGridCell(0, 1)
	assert.NotPanics(t, func() { w.Update(0) })
	assert.Equal(t, 1, n)
}
