// Package draw renders the board into terminal cells and writes them out as
// ANSI escape sequences.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tomz197/frogger/internal/config"
)

// Terminal cells per board cell.
const (
	CellCols = 12
	CellRows = 4
)

// BoardOriginY is the pixel row where the face of the top tile starts. The
// sprite images carry transparent space above it.
const BoardOriginY = 50

// Glyph is one terminal cell of the canvas.
type Glyph struct {
	Ch rune
	FG string
	BG string
}

// Canvas is a drawing buffer of terminal cells covering the board. It maps
// canvas pixels to cells and implements object.Drawer.
type Canvas struct {
	cols, rows int
	glyphs     []Glyph // Flat slice: [row * cols + col]
	atlas      *Atlas

	scaleX float64 // cols / board pixel width
	scaleY float64 // rows / board pixel height

	// Offset for centering the board in a larger terminal.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Reused between frames
}

// NewCanvas creates a canvas for the whole board. A nil atlas uses
// DefaultAtlas.
func NewCanvas(atlas *Atlas) *Canvas {
	if atlas == nil {
		atlas = DefaultAtlas()
	}
	cols := config.Columns * CellCols
	rows := config.Rows * CellRows
	c := &Canvas{
		cols:   cols,
		rows:   rows,
		glyphs: make([]Glyph, cols*rows),
		atlas:  atlas,
		scaleX: float64(cols) / (config.Columns * config.CellWidth),
		scaleY: float64(rows) / (config.Rows * config.CellHeight),
	}
	c.Clear()
	return c
}

// Width returns the canvas width in terminal columns.
func (c *Canvas) Width() int {
	return c.cols
}

// Height returns the canvas height in terminal rows.
func (c *Canvas) Height() int {
	return c.rows
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.glyphs {
		c.glyphs[i] = Glyph{Ch: BlockEmpty}
	}
}

// At returns the glyph at 0-based (col, row). Cells off the canvas are blank.
func (c *Canvas) At(col, row int) Glyph {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return Glyph{Ch: BlockEmpty}
	}
	return c.glyphs[row*c.cols+col]
}

func (c *Canvas) set(col, row int, g Glyph) {
	if col >= 0 && col < c.cols && row >= 0 && row < c.rows {
		c.glyphs[row*c.cols+col] = g
	}
}

// PixelToCell converts canvas pixels to a 0-based (col, row) cell. The result
// may lie outside the canvas.
func (c *Canvas) PixelToCell(x, y float64) (col, row int) {
	const eps = 1e-9
	col = int(math.Floor(x*c.scaleX + eps))
	row = int(math.Floor((y-BoardOriginY)*c.scaleY + eps))
	return col, row
}

// LogicalToTerminal converts canvas pixels to a 1-based terminal position
// (col, row), offset included.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	col, row = c.PixelToCell(x, y)
	return col + 1 + c.offsetCol, row + 1 + c.offsetRow
}

// DrawSprite draws the sprite registered under id with its top-left corner
// at pixel (x, y). Unknown ids draw nothing; parts off the canvas are clipped.
func (c *Canvas) DrawSprite(id string, x, y float64) {
	s, ok := c.atlas.Lookup(id)
	if !ok {
		return
	}
	c0, r0 := c.PixelToCell(x+s.Rect.X, y+s.Rect.Y)
	c1, r1 := c.PixelToCell(x+s.Rect.X+s.Rect.W, y+s.Rect.Y+s.Rect.H)

	if s.Fill != 0 {
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				c.set(col, row, Glyph{Ch: s.Fill, FG: s.FG, BG: s.BG})
			}
		}
	}

	top := r0 + (r1-r0-len(s.Art))/2
	left := c0 + (c1-c0-s.artWidth())/2
	for i, line := range s.Art {
		row := top + i
		col := left
		for _, ch := range line {
			if ch != ' ' {
				g := c.At(col, row)
				g.Ch = ch
				g.FG = s.FG
				if s.BG != "" {
					g.BG = s.BG
				}
				c.set(col, row, g)
			}
			col++
		}
	}
}

// Lines returns the characters of every row, without colours.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.rows)
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		b.Reset()
		for col := 0; col < c.cols; col++ {
			b.WriteRune(c.glyphs[row*c.cols+col].Ch)
		}
		lines[row] = b.String()
	}
	return lines
}

// Render outputs the canvas to the writer, one cursor jump per row and a
// colour change only where it differs from the previous cell.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.cols * c.rows * 4)

	var num [20]byte
	var enc [utf8.UTFMax]byte
	for row := 0; row < c.rows; row++ {
		c.renderBuf.WriteString("\033[")
		c.renderBuf.Write(strconv.AppendInt(num[:0], int64(row+1+c.offsetRow), 10))
		c.renderBuf.WriteByte(';')
		c.renderBuf.Write(strconv.AppendInt(num[:0], int64(1+c.offsetCol), 10))
		c.renderBuf.WriteByte('H')

		var fg, bg string
		for col := 0; col < c.cols; col++ {
			g := c.glyphs[row*c.cols+col]
			if g.FG != fg || g.BG != bg {
				c.renderBuf.WriteString(Reset)
				c.renderBuf.WriteString(g.FG)
				c.renderBuf.WriteString(g.BG)
				fg, bg = g.FG, g.BG
			}
			n := utf8.EncodeRune(enc[:], g.Ch)
			c.renderBuf.Write(enc[:n])
		}
		c.renderBuf.WriteString(Reset)
	}

	return writeChunked(w, c.renderBuf.String())
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the canvas on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.cols + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.rows + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.cols)

	if hasV {
		if hasH {
			writeAt(&buf, left, top, "┌"+line+"┐")
			writeAt(&buf, left, bottom, "└"+line+"┘")
		} else {
			writeAt(&buf, c.offsetCol+1, top, line)
			writeAt(&buf, c.offsetCol+1, bottom, line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.rows; row++ {
			writeAt(&buf, left, row, "│")
			writeAt(&buf, right, row, "│")
		}
	}

	return writeChunked(w, buf.String())
}

func writeAt(b *strings.Builder, col, row int, s string) {
	b.WriteString("\033[")
	b.WriteString(strconv.Itoa(row))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(col))
	b.WriteByte('H')
	b.WriteString(s)
}
