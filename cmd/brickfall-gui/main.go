// brickfall-gui runs brickfall in a desktop window.
//
// Usage:
//
//	brickfall-gui [--difficulty easy|normal|hard] [--config path [--watch]]
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/breakout"
	"github.com/vovakirdan/brickfall/internal/platform/gui"
	"github.com/vovakirdan/brickfall/internal/storage"
)

var (
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagDifficulty  string
	flagWatch       bool
	flagWindowWidth int
	flagLogLevel    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickfall-gui",
	Short: "Brickfall in a desktop window",
	Long: `Play brickfall in a desktop window.

Controls:
  Left/Right (A/D) - Move paddle; releasing stops it
  Rules button     - Show rules
  Esc              - Close rules
  Q                - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	f.BoolVar(&flagWatch, "watch", false, "Reload --config when the file changes")
	f.IntVar(&flagWindowWidth, "window-width", 0, "Window width in pixels (0 = monitor width)")
	f.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagWatch && flagConfig == "" {
		return errors.New("--watch requires --config")
	}
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	if _, err := breakout.LoadConfig(); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "brickfall-gui",
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	opts := gui.Options{Logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
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
	}

	runtime := core.DefaultConfig()
	runtime.WindowW = flagWindowWidth
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed

	return gui.Run(breakout.New(), opts, runtime)
}
