package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DeathCause names what ended a run.
type DeathCause string

const (
	CauseWall     DeathCause = "wall-collision"
	CauseSelf     DeathCause = "self-collision"
	CauseObstacle DeathCause = "obstacle-collision"
)

// GameOver is the banner emitted on the tick a run ends.
type GameOver struct {
	Score  int
	Level  int
	Length int // Snake length at death
	Run    int // 1-based number of the run that just ended
	Cause  DeathCause
	Hold   time.Duration // How long the shell should keep the banner up
}

// FoodView is the render-side copy of the live food.
type FoodView struct {
	Kind FoodKind
	Pos  core.Point
}

// Frame is the snapshot handed to the render sink after every tick.
type Frame struct {
	Tick            uint64
	Snake           []core.Point // Head first
	Obstacles       []core.Point
	Food            *FoodView
	Score           int
	Level           int
	Runs            int
	Speed           int
	Direction       Direction
	Effect          EffectKind
	EffectRemaining int
	Message         *Message
	GameOver        *GameOver
}

// Head returns the head position.
func (f Frame) Head() core.Point {
	if len(f.Snake) == 0 {
		return core.Point{}
	}
	return f.Snake[0]
}

// EffectTag returns the HUD label for the active effect.
func (f Frame) EffectTag() string {
	return f.Effect.Tag()
}

// HUD returns the status line.
func (f Frame) HUD() string {
	hud := fmt.Sprintf("Score: %d | Level: %d | Runs: %d", f.Score, f.Level, f.Runs)
	if tag := f.EffectTag(); tag != "" {
		hud += fmt.Sprintf(" (%s)", tag)
	}
	return hud
}
