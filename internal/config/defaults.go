package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration: a 600x600
// board of 20px cells centered on the origin.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			CellSize:   20,
			HalfWidth:  290,
			HalfHeight: 290,
			SpawnHalf:  280,
		},
		Placement: SnakePlacement{
			FoodClearance:      20,
			ObstacleSeparation: 40,
			CenterExclusion:    40,
			MaxAttempts:        10000,
		},
		Collision: SnakeCollision{
			SelfRadius:     10,
			ObstacleRadius: 15,
			ConsumeRadius:  15,
		},
		Timing: SnakeTiming{
			TimeUnit:      time.Second,
			GameOverHold:  3,
			MessageFrames: 60,
		},
	}
}
