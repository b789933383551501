// snake is a terminal snake game with special foods, leveling and obstacles.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play in the terminal
//	snake rules              - Show foods and leveling rules
//	snake scores             - Show the run history
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.arcade/snake.db)
//	--config <path>   - Load board and timing config from YAML
//	--log <path>      - Write logs to a file
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat and survive in your terminal",
	Long: `Snake is a terminal arcade game. Four kinds of food change your
length, score and speed; every 50 points raises the level, the base
speed and the number of obstacles on the board.

Available commands:
  play     - Play in this terminal
  rules    - Show foods and leveling rules
  scores   - View the run history
  serve    - Start SSH server for remote play

Examples:
  snake
  snake play --seed 42
  snake scores --csv > runs.csv
  snake serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/snake.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger. Without --log it writes to fallback,
// which is io.Discard while the TUI owns the terminal.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the snake config from --config or the search path.
func loadGameConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
