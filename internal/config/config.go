// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is returned by Validate for geometry or timing values
// the game cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid      SnakeGrid      `yaml:"grid"`
	Placement SnakePlacement `yaml:"placement"`
	Collision SnakeCollision `yaml:"collision"`
	Timing    SnakeTiming    `yaml:"timing"`
}

// SnakeGrid defines the playable area. The board spans
// [-HalfWidth, HalfWidth] x [-HalfHeight, HalfHeight].
type SnakeGrid struct {
	CellSize   int `yaml:"cell_size"`
	HalfWidth  int `yaml:"half_width"`
	HalfHeight int `yaml:"half_height"`
	SpawnHalf  int `yaml:"spawn_half"` // Food and obstacles are drawn from [-SpawnHalf, SpawnHalf]
}

// SnakePlacement defines rejection-sampling rules for food and obstacles.
type SnakePlacement struct {
	FoodClearance      int `yaml:"food_clearance"`
	ObstacleSeparation int `yaml:"obstacle_separation"`
	CenterExclusion    int `yaml:"center_exclusion"`
	MaxAttempts        int `yaml:"max_attempts"`
}

// SnakeCollision defines Euclidean radii used for hit tests.
type SnakeCollision struct {
	SelfRadius     float64 `yaml:"self_radius"`
	ObstacleRadius float64 `yaml:"obstacle_radius"`
	ConsumeRadius  float64 `yaml:"consume_radius"`
}

// SnakeTiming defines how ticks map to wall-clock time.
type SnakeTiming struct {
	TimeUnit      time.Duration `yaml:"time_unit"`
	GameOverHold  int           `yaml:"game_over_hold"` // In time units
	MessageFrames int           `yaml:"message_frames"`
}

// GameOverDuration returns how long the game-over banner stays up.
func (t SnakeTiming) GameOverDuration() time.Duration {
	return time.Duration(t.GameOverHold) * t.TimeUnit
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	g := c.Grid
	switch {
	case g.CellSize <= 0:
		return fmt.Errorf("%w: grid.cell_size must be positive, got %d", ErrInvalidConfig, g.CellSize)
	case g.HalfWidth < g.CellSize || g.HalfHeight < g.CellSize:
		return fmt.Errorf("%w: grid half extents must be at least one cell", ErrInvalidConfig)
	case g.SpawnHalf <= 0:
		return fmt.Errorf("%w: grid.spawn_half must be positive, got %d", ErrInvalidConfig, g.SpawnHalf)
	}

	spawnEdge := int(math.Round(float64(g.SpawnHalf)/float64(g.CellSize))) * g.CellSize
	if spawnEdge > g.HalfWidth || spawnEdge > g.HalfHeight {
		return fmt.Errorf("%w: spawn area (%d) extends past the board", ErrInvalidConfig, spawnEdge)
	}

	p := c.Placement
	switch {
	case p.MaxAttempts <= 0:
		return fmt.Errorf("%w: placement.max_attempts must be positive", ErrInvalidConfig)
	case p.FoodClearance < 0 || p.ObstacleSeparation < 0 || p.CenterExclusion < 0:
		return fmt.Errorf("%w: placement distances must not be negative", ErrInvalidConfig)
	case p.CenterExclusion >= g.SpawnHalf:
		return fmt.Errorf("%w: center_exclusion %d leaves no room for obstacles", ErrInvalidConfig, p.CenterExclusion)
	}

	col := c.Collision
	if col.SelfRadius <= 0 || col.ObstacleRadius <= 0 || col.ConsumeRadius <= 0 {
		return fmt.Errorf("%w: collision radii must be positive", ErrInvalidConfig)
	}

	t := c.Timing
	switch {
	case t.TimeUnit <= 0:
		return fmt.Errorf("%w: timing.time_unit must be positive", ErrInvalidConfig)
	case t.GameOverHold < 0 || t.MessageFrames < 0:
		return fmt.Errorf("%w: timing values must not be negative", ErrInvalidConfig)
	}

	return nil
}
