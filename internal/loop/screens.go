package loop

import (
	"fmt"

	"github.com/tomz197/frogger/internal/draw"
)

// drawHUD draws the title and counters above the board and the controls
// below it.
func (l *Loop) drawHUD(lay layout) {
	left := lay.boardCol + 1
	width := l.canvas.Width()
	stats := l.world.Stats()

	l.writer.WriteAt(left, lay.hudRow, clearLine(width))
	l.writer.WriteAt(left, lay.hudRow, "F R O G G E R")
	counters := fmt.Sprintf("Crossings: %d  Hits: %d", stats.Crossings, stats.Collisions)
	l.writer.WriteAt(left+width-len(counters), lay.hudRow, counters)

	help := "Arrows/WASD to move, Q to quit"
	if warn := l.opts.IdleWarning; l.opts.IdleTimeout > 0 && warn > 0 && l.state.Idle >= warn {
		remaining := int((l.opts.IdleTimeout-l.state.Idle).Seconds()) + 1
		help = fmt.Sprintf("Idle - disconnecting in %d seconds...", remaining)
	}
	l.writer.WriteAt(left, lay.helpRow, clearLine(width))
	l.writer.WriteAt(left+(width-len(help))/2, lay.helpRow, help)
}

// drawTooSmall asks for a bigger terminal.
func (l *Loop) drawTooSmall() {
	draw.ClearScreen(l.writer)
	centerX := l.state.termWidth / 2
	centerY := l.state.termHeight / 2

	msg := "Terminal too small"
	l.writer.WriteAt(max(centerX-len(msg)/2, 1), max(centerY, 1), msg)
	need := fmt.Sprintf("need %dx%d", l.canvas.Width(), l.canvas.Height()+hudRows+helpRows)
	l.writer.WriteAt(max(centerX-len(need)/2, 1), max(centerY+1, 1), need)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (l *Loop) drawShutdownScreen() {
	centerX := l.state.termWidth / 2
	centerY := l.state.termHeight / 2

	title := "SERVER SHUTTING DOWN"
	l.writer.WriteAt(centerX-len(title)/2, centerY-3, title)

	msg1 := "The server is restarting for maintenance."
	l.writer.WriteAt(centerX-len(msg1)/2, centerY-1, msg1)

	msg2 := "Please reconnect in a moment."
	l.writer.WriteAt(centerX-len(msg2)/2, centerY, msg2)

	remaining := int(l.state.shutdownTimer.Seconds()) + 1
	countdown := fmt.Sprintf("Disconnecting in %d seconds...", remaining)
	l.writer.WriteAt(centerX-len(countdown)/2, centerY+2, countdown)

	hint := "Press Q to disconnect now"
	l.writer.WriteAt(centerX-len(hint)/2, centerY+4, hint)
}

func clearLine(width int) string {
	return fmt.Sprintf("%*s", width, "")
}
