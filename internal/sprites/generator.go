package sprites

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// Placeholder dimensions, matching the full-size sprite art.
const (
	Width  = 101
	Height = 171

	faceTop    = 50  // First opaque row of a block tile
	faceBottom = 133 // First row of a block's front side
)

// ErrUnknownSprite is returned for ids without a placeholder.
var ErrUnknownSprite = errors.New("unknown sprite")

// Palette holds the placeholder colours.
var Palette = struct {
	Water     color.RGBA
	WaterEdge color.RGBA
	Stone     color.RGBA
	StoneEdge color.RGBA
	Grass     color.RGBA
	GrassEdge color.RGBA
	Bug       color.RGBA
	BugEye    color.RGBA
	Skin      color.RGBA
	Shirt     color.RGBA
}{
	Water:     color.RGBA{60, 110, 220, 255},
	WaterEdge: color.RGBA{40, 80, 170, 255},
	Stone:     color.RGBA{150, 150, 150, 255},
	StoneEdge: color.RGBA{110, 110, 110, 255},
	Grass:     color.RGBA{90, 190, 80, 255},
	GrassEdge: color.RGBA{60, 140, 55, 255},
	Bug:       color.RGBA{220, 40, 40, 255},
	BugEye:    color.RGBA{255, 255, 255, 255},
	Skin:      color.RGBA{240, 200, 160, 255},
	Shirt:     color.RGBA{40, 140, 230, 255},
}

// Generate paints the placeholder image for a sprite id.
func Generate(id string) (*image.RGBA, error) {
	switch id {
	case WaterBlock:
		return blockTile(Palette.Water, Palette.WaterEdge), nil
	case StoneBlock:
		return blockTile(Palette.Stone, Palette.StoneEdge), nil
	case GrassBlock:
		return blockTile(Palette.Grass, Palette.GrassEdge), nil
	case EnemyBug:
		return bug(), nil
	case CharBoy:
		return boy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSprite, id)
	}
}

// SaveAll writes every placeholder as a PNG below dir, creating the
// directories the sprite ids name.
func SaveAll(dir string) ([]string, error) {
	var written []string
	for _, id := range All() {
		img, err := Generate(id)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, filepath.FromSlash(id))
		if err := savePNG(path, img); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func savePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func newCanvas() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, Width, Height))
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// fillEllipse fills the axis-aligned ellipse centred on (cx, cy).
func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// blockTile draws the top face of a block and its darker front side. The
// rows above faceTop stay transparent so tiles stack like the full-size art.
func blockTile(face, edge color.RGBA) *image.RGBA {
	img := newCanvas()
	fillRect(img, image.Rect(0, faceTop, Width, faceBottom), face)
	fillRect(img, image.Rect(0, faceBottom, Width, Height-10), edge)
	return img
}

func bug() *image.RGBA {
	img := newCanvas()
	// Body, head and an eye looking right (the direction of travel).
	fillEllipse(img, 44, 110, 34, 20, Palette.Bug)
	fillEllipse(img, 84, 108, 14, 14, Palette.Bug)
	fillEllipse(img, 88, 104, 4, 4, Palette.BugEye)
	// Legs
	for _, x := range []int{26, 44, 62} {
		fillRect(img, image.Rect(x, 128, x+4, 138), Palette.Bug)
	}
	return img
}

func boy() *image.RGBA {
	img := newCanvas()
	fillEllipse(img, 50, 86, 16, 16, Palette.Skin)
	fillRect(img, image.Rect(34, 104, 67, 134), Palette.Shirt)
	fillRect(img, image.Rect(36, 134, 46, 148), Palette.Skin)
	fillRect(img, image.Rect(55, 134, 65, 148), Palette.Skin)
	return img
}
