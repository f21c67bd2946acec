package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/frogger/internal/config"
	"github.com/tomz197/frogger/internal/loop"
	"github.com/tomz197/frogger/internal/object"
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
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "write logs to this file")
	noSound := flag.Bool("no-sound", false, "disable sound effects")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *noSound {
		cfg.Sound.Enabled = false
	}

	// The board owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := config.NewLogger(logOut, cfg.Log.Level)
	if err != nil {
		return err
	}

	var sinks []object.EventSink
	if cfg.Sound.Enabled {
		player := sound.NewPlayer(logger)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			sinks = append(sinks, player)
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("game started", "enemies", cfg.Game.Enemies, "fps", cfg.Game.FPS)
	l := loop.New(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Game:   cfg.Game,
		Logger: logger,
		Sinks:  sinks,
	})
	if err := l.Run(ctx); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	stats := l.World().Stats()
	logger.Info("game finished", "crossings", stats.Crossings, "collisions", stats.Collisions)
	return nil
}
