package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/breakout"
	"github.com/vovakirdan/brickfall/internal/platform/tui"
	"github.com/vovakirdan/brickfall/internal/registry"
	"github.com/vovakirdan/brickfall/internal/storage"
)

var (
	flagWindowWidth int
	flagWatch       bool
	flagLogFile     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The playfield is scaled to fit the window.

Controls:
  Left/A/H    - Move paddle left
  Right/D/L   - Move paddle right
  Space/Down  - Stop paddle
  ?           - Show rules
  Esc         - Close rules
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Wider paddle, slower balls
  normal - Configured values
  hard   - Narrower paddle, faster balls

Examples:
  brickfall play
  brickfall play --difficulty easy
  brickfall play --config ./my-breakout.yaml --watch
  brickfall play --log-file brickfall.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWindowWidth, "window-width", core.DefaultConfig().WindowW, "Virtual window width in pixels; sets the canvas size")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when the file changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagWatch && flagConfig == "" {
		return errors.New("--watch requires --config")
	}
	// Reset falls back to defaults, so a bad --config is reported here.
	if _, err := breakout.LoadConfig(); err != nil {
		return err
	}

	logger, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		WindowW:  flagWindowWidth,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(breakout.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	opts := tui.Options{Logger: logger}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if flagWatch {
		watcher, err := config.NewWatcher(flagConfig)
		if err != nil {
			return err
		}
		defer watcher.Close()
		opts.Watcher = watcher
		logger.Info("watching config", "path", watcher.Path())
	}

	if err := tui.Run(game, opts, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
