// Package loop provides the terminal frame engine: input, update and draw at
// a fixed frame rate.
package loop

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/frogger/internal/config"
	"github.com/tomz197/frogger/internal/draw"
	"github.com/tomz197/frogger/internal/game"
	"github.com/tomz197/frogger/internal/input"
	"github.com/tomz197/frogger/internal/object"
)

// Options configures a Loop.
type Options struct {
	Game         config.GameConfig  // Zero value uses config.Default().Game
	TermSizeFunc draw.TermSizeFunc  // nil reads the size of os.Stdout
	Logger       *log.Logger        // nil discards
	Sinks        []object.EventSink // Extra listeners of gameplay events
	Rand         *rand.Rand         // Overrides the seed from Game

	// ShutdownNotice is how long the shutdown message is shown after the
	// context is cancelled. Zero exits right away.
	ShutdownNotice time.Duration
	// IdleTimeout ends the session after that long without input. IdleWarning
	// starts a countdown before it. Zero disables both.
	IdleTimeout time.Duration
	IdleWarning time.Duration
}

// Loop runs one game in a terminal.
type Loop struct {
	world        *game.World
	state        *State
	canvas       *draw.Canvas
	writer       *draw.ChunkWriter
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	frameTime    time.Duration
	logger       *log.Logger
	opts         Options
}

// New creates a loop reading keys from r and drawing to w.
func New(r io.Reader, w io.Writer, opts Options) *Loop {
	if opts.Game == (config.GameConfig{}) {
		opts.Game = config.Default().Game
	}
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	worldOpts := game.OptionsFromConfig(opts.Game)
	if opts.Rand != nil {
		worldOpts.Rand = opts.Rand
	}
	worldOpts.Logger = opts.Logger
	worldOpts.Sinks = opts.Sinks

	return &Loop{
		world:        game.NewWorld(worldOpts),
		state:        NewState(),
		canvas:       draw.NewCanvas(nil),
		writer:       draw.NewChunkWriter(w),
		inputStream:  input.StartStream(r),
		termSizeFunc: opts.TermSizeFunc,
		frameTime:    config.FrameTime(opts.Game.FPS),
		logger:       opts.Logger,
		opts:         opts,
	}
}

// World returns the world driven by the loop.
func (l *Loop) World() *game.World {
	return l.world
}

// Run starts the loop with the standard Input → Update → Draw cycle. It
// returns when the player quits, the input closes, the session idles out or
// ctx is cancelled and the shutdown notice has been shown.
func (l *Loop) Run(ctx context.Context) error {
	draw.HideCursor(l.writer)
	draw.ClearScreen(l.writer)

	lastTime := time.Now()

	for l.state.Running {
		frameStart := time.Now()
		l.state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		if ctx.Err() != nil && l.state.GameState != GameStateShutdown {
			l.startShutdown()
		}

		// ===== INPUT PHASE =====
		l.processInput()

		// ===== UPDATE PHASE =====
		l.updateScreen()
		switch l.state.GameState {
		case GameStatePlaying:
			l.updatePlayingState()
		case GameStateShutdown:
			l.updateShutdownState()
		}

		// ===== DRAW PHASE =====
		if l.state.Running {
			if err := l.drawFrame(); err != nil {
				return err
			}
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < l.frameTime {
			time.Sleep(l.frameTime - elapsed)
		}
	}

	stats := l.world.Stats()
	l.logger.Debug("loop stopped", "crossings", stats.Crossings, "collisions", stats.Collisions)

	draw.ClearScreen(l.writer)
	draw.ShowCursor(l.writer)
	return l.writer.Flush()
}

// processInput reads and applies all pending input.
func (l *Loop) processInput() {
	inp := input.ReadInput(l.inputStream)

	if len(inp.Pressed) > 0 {
		l.state.Idle = 0
	}
	if l.state.GameState == GameStatePlaying {
		for _, dir := range inp.Directions() {
			l.world.HandleInput(dir)
		}
	}
	if inp.Quit || inp.Closed {
		l.state.Running = false
	}
}

// updateScreen tracks the terminal size and lays the board out in it.
func (l *Loop) updateScreen() {
	width, height, err := l.termSizeFunc()
	if err != nil {
		return
	}
	if width != l.state.termWidth || height != l.state.termHeight {
		l.state.termWidth, l.state.termHeight = width, height
		draw.ClearScreen(l.writer)
	}
}

func (l *Loop) updatePlayingState() {
	l.world.Update(l.state.Delta)

	if l.opts.IdleTimeout <= 0 {
		return
	}
	l.state.Idle += l.state.Delta
	if l.state.Idle >= l.opts.IdleTimeout {
		l.logger.Info("session idle, disconnecting", "idle", l.state.Idle.Round(time.Second))
		l.state.Running = false
	}
}

func (l *Loop) startShutdown() {
	l.state.GameState = GameStateShutdown
	l.state.shutdownTimer = l.opts.ShutdownNotice
	draw.ClearScreen(l.writer)
}

// updateShutdownState counts down the shutdown notice.
func (l *Loop) updateShutdownState() {
	l.state.shutdownTimer -= l.state.Delta
	if l.state.shutdownTimer <= 0 {
		l.state.Running = false
	}
}

// drawFrame draws the board and the overlay for the current state.
func (l *Loop) drawFrame() error {
	switch l.state.GameState {
	case GameStateShutdown:
		l.drawShutdownScreen()
	case GameStatePlaying:
		lay := computeLayout(l.state.termWidth, l.state.termHeight, l.canvas.Width(), l.canvas.Height())
		if !lay.fits {
			l.drawTooSmall()
			break
		}
		l.canvas.SetOffset(lay.boardCol, lay.boardRow)
		l.canvas.Clear()
		l.world.Render(l.canvas)
		if err := l.canvas.Render(l.writer); err != nil {
			return err
		}
		if lay.border {
			if err := l.canvas.RenderBorder(l.writer); err != nil {
				return err
			}
		}
		l.drawHUD(lay)
	}
	return l.writer.Flush()
}

// layout places the board, the HUD line and the help line in the terminal.
type layout struct {
	fits     bool
	border   bool
	boardCol int // 0-based offsets of the board
	boardRow int
	hudRow   int // 1-based rows of the text lines
	helpRow  int
}

func computeLayout(termWidth, termHeight, boardWidth, boardHeight int) layout {
	withBorder := boardHeight + hudRows + helpRows + 2*borderSize
	bare := boardHeight + hudRows + helpRows

	switch {
	case termWidth >= boardWidth+2*borderSize && termHeight >= withBorder:
		col, row := draw.CenterOffset(termWidth, termHeight, boardWidth+2*borderSize, withBorder)
		return layout{
			fits:     true,
			border:   true,
			boardCol: col + borderSize,
			boardRow: row + hudRows + borderSize,
			hudRow:   row + 1,
			helpRow:  row + withBorder,
		}
	case termWidth >= boardWidth && termHeight >= bare:
		col, row := draw.CenterOffset(termWidth, termHeight, boardWidth, bare)
		return layout{
			fits:     true,
			boardCol: col,
			boardRow: row + hudRows,
			hudRow:   row + 1,
			helpRow:  row + bare,
		}
	default:
		return layout{}
	}
}
