package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tomz197/frogger/internal/config"
	"github.com/tomz197/frogger/internal/desktop"
	"github.com/tomz197/frogger/internal/game"
	"github.com/tomz197/frogger/internal/sound"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "frogger: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file")
	assets := flag.String("assets", "", "directory holding the images/ sprites")
	scale := flag.Float64("scale", 0, "window scale factor")
	noSound := flag.Bool("no-sound", false, "disable sound effects")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *assets != "" {
		cfg.Desktop.AssetDir = *assets
	}
	if *scale > 0 {
		cfg.Desktop.Scale = *scale
	}
	if *noSound {
		cfg.Sound.Enabled = false
	}

	logger, err := config.NewLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	opts := game.OptionsFromConfig(cfg.Game)
	opts.Logger = logger
	if cfg.Sound.Enabled {
		player := sound.NewPlayer(logger)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			opts.Sinks = append(opts.Sinks, player)
		}
	}
	world := game.NewWorld(opts)

	res := desktop.NewResources(cfg.Desktop.AssetDir, logger)
	if err := res.Preload(); err != nil {
		return err
	}

	if err := desktop.Run(desktop.New(world, res, logger), cfg.Desktop.Scale, cfg.Game.FPS); err != nil {
		return err
	}
	stats := world.Stats()
	logger.Info("game finished", "crossings", stats.Crossings, "collisions", stats.Collisions)
	return nil
}
