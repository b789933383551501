package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a snake session in this terminal.

Controls:
  Arrows/WASD/hjkl - Steer
  P/Esc            - Pause
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Dying shows the score for a few seconds, then a new run starts.
Score, level and obstacles carry over between runs.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadGameConfig()

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		logger.Warn("playing without run history", "error", err)
		// Continue without storage - game still works
	} else {
		opts.Store = store
	}

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		if errors.Is(runErr, snake.ErrConfigurationExhausted) {
			fmt.Fprintln(os.Stderr, "The board is too crowded to place more food or obstacles.")
		}
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
