// Package desktop runs the game in a window.
package desktop

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/frogger/internal/config"
	"github.com/tomz197/frogger/internal/game"
	"github.com/tomz197/frogger/internal/input"
)

var background = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}

// keyBindings maps window keys to the arrow key codes the world understands.
var keyBindings = []struct {
	key  ebiten.Key
	code int
}{
	{ebiten.KeyArrowLeft, input.KeyCodeLeft},
	{ebiten.KeyArrowUp, input.KeyCodeUp},
	{ebiten.KeyArrowRight, input.KeyCodeRight},
	{ebiten.KeyArrowDown, input.KeyCodeDown},
	{ebiten.KeyA, input.KeyCodeLeft},
	{ebiten.KeyW, input.KeyCodeUp},
	{ebiten.KeyD, input.KeyCodeRight},
	{ebiten.KeyS, input.KeyCodeDown},
}

// Game implements ebiten.Game on top of a world.
type Game struct {
	world  *game.World
	res    *Resources
	logger *log.Logger
	failed map[string]bool // Sprites that could not be loaded, logged once

	screen *ebiten.Image // Target of DrawSprite during Draw
}

// New creates a windowed game for world.
func New(world *game.World, res *Resources, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		world:  world,
		res:    res,
		logger: logger,
		failed: make(map[string]bool),
	}
}

// Update applies released keys and advances the world by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustReleased(b.key) {
			g.world.HandleKeyCode(b.code)
		}
	}
	g.world.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// Draw renders the world and the counters.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.screen = screen
	g.world.Render(g)
	g.screen = nil

	stats := g.world.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Crossings: %d  Hits: %d", stats.Crossings, stats.Collisions), 8, 8)
	ebitenutil.DebugPrintAt(screen, "Arrows/WASD to move, Esc to quit", 8, config.CanvasHeight-20)
}

// DrawSprite implements object.Drawer.
func (g *Game) DrawSprite(id string, x, y float64) {
	img, err := g.res.Image(id)
	if err != nil {
		if !g.failed[id] {
			g.failed[id] = true
			g.logger.Error("sprite unavailable", "id", id, "err", err)
		}
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	g.screen.DrawImage(img, op)
}

// Layout keeps the logical canvas size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.CanvasWidth, config.CanvasHeight
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, scale float64, tps int) error {
	ebiten.SetWindowSize(int(config.CanvasWidth*scale), int(config.CanvasHeight*scale))
	ebiten.SetWindowTitle("Frogger")
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
