package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Leveling constants.
const (
	BaseSpeed      = 150 // Speed at level 1, in grid steps per 100 time units
	SpeedPerLevel  = 20
	PointsPerLevel = 50
)

// BaseSpeedFor returns the speed a level runs at when no effect is active.
func BaseSpeedFor(level int) int {
	return BaseSpeed + (level-1)*SpeedPerLevel
}

// EffectKind is a temporary speed modifier.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectSlow
	EffectFast
)

func (e EffectKind) String() string {
	switch e {
	case EffectSlow:
		return "Slow"
	case EffectFast:
		return "Fast"
	default:
		return "None"
	}
}

// Tag returns the HUD label for the effect, empty when none is active.
func (e EffectKind) Tag() string {
	switch e {
	case EffectSlow:
		return "SLOW"
	case EffectFast:
		return "FAST"
	default:
		return ""
	}
}

// Effect is an active temporary modifier with a countdown in ticks.
type Effect struct {
	Kind      EffectKind
	Remaining int
}

// Message is a transient HUD notice.
type Message struct {
	Text  string
	Color core.Color
}

// State is the scoring and speed state of a session.
// Score, Level and Runs live for the whole session; Speed and Effect are
// reset at the start of every run.
type State struct {
	Score  int
	Level  int
	Runs   int
	Speed  int
	Effect *Effect
}

// NewState returns the state at process start: score 0, level 1.
func NewState() State {
	return State{
		Level: 1,
		Speed: BaseSpeedFor(1),
	}
}

// ApplyScoreDelta adds d to the score, flooring at zero.
func (s *State) ApplyScoreDelta(d int) {
	s.Score = max(0, s.Score+d)
}

// AdjustSpeed shifts the current speed, clamped to [MinSpeed, MaxSpeed].
func (s *State) AdjustSpeed(delta int) {
	s.Speed = core.Clamp(s.Speed+delta, MinSpeed, MaxSpeed)
}

// SetEffect starts an effect, replacing any active one.
func (s *State) SetEffect(kind EffectKind, ticks int) {
	s.Effect = &Effect{Kind: kind, Remaining: ticks}
}

// ActiveEffect returns the active effect kind or EffectNone.
func (s *State) ActiveEffect() EffectKind {
	if s.Effect == nil {
		return EffectNone
	}
	return s.Effect.Kind
}

// CheckLevelUp raises the level when the score has crossed a threshold.
// It returns the number of obstacles the new level asks for and whether
// the level changed. Speed is reset to the new level's base.
func (s *State) CheckLevelUp() (obstacles int, leveled bool) {
	newLevel := s.Score/PointsPerLevel + 1
	if newLevel <= s.Level {
		return 0, false
	}
	s.Level = newLevel
	s.Speed = BaseSpeedFor(s.Level)
	return ObstaclesForLevel(s.Level), true
}

// DecayEffect counts down the active effect. When it runs out the effect is
// cleared and speed returns to the level base; it reports whether that happened.
func (s *State) DecayEffect() bool {
	if s.Effect == nil {
		return false
	}
	s.Effect.Remaining--
	if s.Effect.Remaining > 0 {
		return false
	}
	s.Effect = nil
	s.Speed = BaseSpeedFor(s.Level)
	return true
}

// ResetRun clears the per-run parts of the state after a death.
func (s *State) ResetRun() {
	s.Effect = nil
	s.Speed = BaseSpeedFor(s.Level)
}
