// Command genplaceholders writes placeholder PNGs for every game sprite.
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/frogger/internal/sprites"
)

func main() {
	out := flag.String("out", ".", "directory to write images/ into")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "genplaceholders"})

	paths, err := sprites.SaveAll(*out)
	if err != nil {
		logger.Fatal("write sprites", "err", err)
	}
	for _, p := range paths {
		logger.Info("wrote", "path", p)
	}
}
