package draw

import (
	"unicode/utf8"

	"github.com/tomz197/frogger/internal/sprites"
)

// BlockEmpty is the glyph of a blank cell.
const BlockEmpty = ' '

// Rect is the part of a sprite image that holds the visible art, in pixels
// relative to the position the sprite is drawn at.
type Rect struct {
	X, Y, W, H float64
}

// Sprite is the terminal rendition of an image.
type Sprite struct {
	Art  []string // Lines centred in Rect; spaces are transparent
	FG   string   // Foreground of Art and Fill
	BG   string   // Background; empty keeps whatever is underneath
	Fill rune     // When set, every cell of Rect is painted with it first
	Rect Rect
}

// Atlas resolves sprite ids to their terminal renditions.
type Atlas struct {
	sprites map[string]Sprite
}

// NewAtlas returns an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{sprites: make(map[string]Sprite)}
}

// Register adds or replaces the rendition of id.
func (a *Atlas) Register(id string, s Sprite) {
	a.sprites[id] = s
}

// Lookup returns the rendition of id.
func (a *Atlas) Lookup(id string) (Sprite, bool) {
	s, ok := a.sprites[id]
	return s, ok
}

// artWidth returns the widest line of s.Art in runes.
func (s Sprite) artWidth() int {
	w := 0
	for _, line := range s.Art {
		if n := utf8.RuneCountInString(line); n > w {
			w = n
		}
	}
	return w
}

// Visible area of the sprite images. Tiles show their top face, characters
// sit on the face of the tile below their draw position.
var (
	tileRect   = Rect{X: 0, Y: 50, W: 101, H: 83}
	playerRect = Rect{X: 0, Y: 85, W: 101, H: 83}
	enemyRect  = Rect{X: 0, Y: 70, W: 101, H: 83}
)

// DefaultAtlas returns renditions of every game sprite.
func DefaultAtlas() *Atlas {
	a := NewAtlas()
	a.Register(sprites.WaterBlock, Sprite{
		Art: []string{
			" ~    ~    ~",
			"    ~    ~  ",
			"  ~    ~    ",
			"     ~    ~ ",
		},
		FG:   FgBrightCyan,
		BG:   BgBlue,
		Fill: BlockEmpty,
		Rect: tileRect,
	})
	a.Register(sprites.StoneBlock, Sprite{
		Art: []string{
			"            ",
			"            ",
			"            ",
			"▁▁▁▁▁▁▁▁▁▁▁▁",
		},
		FG:   FgBlack,
		BG:   BgBrightBlack,
		Fill: BlockEmpty,
		Rect: tileRect,
	})
	a.Register(sprites.GrassBlock, Sprite{
		Art: []string{
			"  '   ,   ' ",
			",   '   ,   ",
			"   ,   '   ,",
			" '   ,   '  ",
		},
		FG:   FgBrightGreen,
		BG:   BgGreen,
		Fill: BlockEmpty,
		Rect: tileRect,
	})
	a.Register(sprites.EnemyBug, Sprite{
		Art: []string{
			"  ▄▄▄▄▄   ",
			" ███████▄▄",
			"  ▀ ▀ ▀   ",
		},
		FG:   FgBrightRed,
		Rect: enemyRect,
	})
	a.Register(sprites.CharBoy, Sprite{
		Art: []string{
			" (o.o) ",
			"  /|\\  ",
			"  / \\  ",
		},
		FG:   FgBrightYellow,
		Rect: playerRect,
	})
	return a
}
