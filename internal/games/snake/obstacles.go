package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ObstacleField holds the static obstacles of a session. Obstacles are only
// ever added; they survive deaths and are never moved.
type ObstacleField struct {
	positions       []core.Point
	separation      int
	centerExclusion int
	hitRadius       float64
	maxAttempts     int
}

// NewObstacleField creates an empty field with the given placement rules.
func NewObstacleField(p config.SnakePlacement, hitRadius float64) *ObstacleField {
	return &ObstacleField{
		separation:      p.ObstacleSeparation,
		centerExclusion: p.CenterExclusion,
		hitRadius:       hitRadius,
		maxAttempts:     p.MaxAttempts,
	}
}

// ObstaclesForLevel is the batch size requested when reaching level.
func ObstaclesForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return 2 * (level - 1)
}

// AddBatch places count new obstacles by rejection sampling. A candidate must
// be outside the center exclusion square, not closer than the separation to
// any existing obstacle on both axes, and off every reserved cell. Each
// obstacle gets maxAttempts tries; obstacles placed before an exhaustion
// error are kept.
func (f *ObstacleField) AddBatch(rng *rand.Rand, count int, grid Grid, reserved ...core.Point) error {
	center := grid.Origin()
	for n := range count {
		placed := false
		for range f.maxAttempts {
			p := grid.RandomCell(rng)
			if core.Abs(p.X-center.X) <= f.centerExclusion && core.Abs(p.Y-center.Y) <= f.centerExclusion {
				continue
			}
			if tooClose(p, f.positions, f.separation) || tooClose(p, reserved, grid.CellSize()) {
				continue
			}
			f.positions = append(f.positions, p)
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("%w: placed %d of %d obstacles (field holds %d)",
				ErrConfigurationExhausted, n, count, len(f.positions))
		}
	}
	return nil
}

// Hits reports whether p is within the hit radius of any obstacle.
func (f *ObstacleField) Hits(p core.Point) bool {
	for _, o := range f.positions {
		if p.Dist(o) < f.hitRadius {
			return true
		}
	}
	return false
}

// Len returns the number of obstacles.
func (f *ObstacleField) Len() int {
	return len(f.positions)
}

// Positions returns a copy of the obstacle positions.
func (f *ObstacleField) Positions() []core.Point {
	out := make([]core.Point, len(f.positions))
	copy(out, f.positions)
	return out
}
