package desktop

import (
	"errors"
	"fmt"
	_ "image/png" // PNG sprites
	"io"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/tomz197/frogger/internal/sprites"
)

// Resources loads sprite images by id from an asset directory. Missing files
// are replaced by generated placeholders. Images are loaded once.
type Resources struct {
	dir    string
	logger *log.Logger

	mu    sync.Mutex
	cache map[string]*ebiten.Image
}

// NewResources creates a loader rooted at dir. A nil logger discards.
func NewResources(dir string, logger *log.Logger) *Resources {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resources{
		dir:    dir,
		logger: logger,
		cache:  make(map[string]*ebiten.Image),
	}
}

// Image returns the image of sprite id.
func (r *Resources) Image(id string) (*ebiten.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if img, ok := r.cache[id]; ok {
		return img, nil
	}

	path := filepath.Join(r.dir, filepath.FromSlash(id))
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		rgba, genErr := sprites.Generate(id)
		if genErr != nil {
			return nil, fmt.Errorf("load sprite %s: %w", id, errors.Join(err, genErr))
		}
		r.logger.Debug("using placeholder sprite", "id", id, "err", err)
		img = ebiten.NewImageFromImage(rgba)
	}
	r.cache[id] = img
	return img, nil
}

// Preload loads every game sprite so the first frame does not stall.
func (r *Resources) Preload() error {
	var errs []error
	for _, id := range sprites.All() {
		if _, err := r.Image(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
