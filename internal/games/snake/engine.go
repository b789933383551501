// Package snake implements the snake simulation engine: a single-owner state
// machine advanced one tick at a time by a platform shell.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Engine owns the board, snake, obstacles, food and scoring of one session.
// It is not safe for concurrent use; the shell drives it from one goroutine.
type Engine struct {
	cfg    config.SnakeConfig
	grid   Grid
	rng    *rand.Rand
	logger *log.Logger
	tick   uint64

	// Session scope: survives deaths.
	state     State
	obstacles *ObstacleField

	// Run scope: replaced on every death.
	run runScope

	last Frame
}

type runScope struct {
	body       *Body
	direction  Direction
	food       *Food
	message    Message
	messageTTL int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine at score 0, level 1 with the first obstacle batch
// and the first food in place.
func New(cfg config.SnakeConfig, seed int64, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	e := &Engine{
		cfg:       cfg,
		grid:      NewGrid(cfg.Grid),
		rng:       rand.New(rand.NewSource(seed)),
		logger:    log.New(io.Discard),
		state:     NewState(),
		obstacles: NewObstacleField(cfg.Placement, cfg.Collision.ObstacleRadius),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.obstacles.AddBatch(e.rng, ObstaclesForLevel(e.state.Level), e.grid); err != nil {
		return nil, err
	}
	if err := e.resetRun(); err != nil {
		return nil, err
	}

	e.last = e.emitFrame()
	return e, nil
}

// OnDirectionInput steers the snake from the next tick on. The exact
// opposite of the current direction is ignored; anything else replaces it,
// so only the last input between two ticks counts.
func (e *Engine) OnDirectionInput(d Direction) error {
	if !d.Valid() {
		e.logger.Warn("rejected direction input", "value", int(d))
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	if d == e.run.direction.Opposite() {
		e.logger.Debug("ignored reversal", "current", e.run.direction, "requested", d)
		return nil
	}
	e.run.direction = d
	return nil
}

// Tick advances the simulation one step:
// collide, move, eat, level up, decay the effect, emit a frame.
// Errors are only returned when placement runs out of attempts.
func (e *Engine) Tick() (Frame, error) {
	e.tick++

	if cause, dead := e.collision(); dead {
		return e.die(cause)
	}

	e.run.body.Advance(e.run.direction, e.grid.CellSize())

	if f := e.run.food; f != nil && e.run.body.Head().Dist(f.Pos) < e.cfg.Collision.ConsumeRadius {
		if err := e.consume(f); err != nil {
			return e.last, err
		}
	}

	if e.state.DecayEffect() {
		e.logger.Debug("effect expired", "speed", e.state.Speed)
	}

	e.last = e.emitFrame()
	return e.last, nil
}

// TickInterval is the delay before the next tick: 100/speed time units.
func (e *Engine) TickInterval() time.Duration {
	return time.Duration(float64(e.cfg.Timing.TimeUnit) * 100 / float64(e.state.Speed))
}

// Frame returns the most recent snapshot.
func (e *Engine) Frame() Frame {
	return e.last
}

// State returns a copy of the scoring state.
func (e *Engine) State() State {
	st := e.state
	if st.Effect != nil {
		eff := *st.Effect
		st.Effect = &eff
	}
	return st
}

// Direction returns the current heading.
func (e *Engine) Direction() Direction {
	return e.run.direction
}

// Grid returns the board geometry.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Render draws the most recent frame.
func (e *Engine) Render(dst *core.Screen) {
	e.last.Render(dst, e.grid)
}

// collision checks the current head against walls, the body and obstacles.
func (e *Engine) collision() (DeathCause, bool) {
	body := e.run.body
	head := body.Head()
	switch {
	case !e.grid.Contains(head):
		return CauseWall, true
	case body.HitsSelf(e.cfg.Collision.SelfRadius):
		return CauseSelf, true
	case e.obstacles.Hits(head):
		return CauseObstacle, true
	}
	return "", false
}

// die ends the current run and starts the next one.
// Score, level and obstacles carry over.
func (e *Engine) die(cause DeathCause) (Frame, error) {
	banner := &GameOver{
		Score:  e.state.Score,
		Level:  e.state.Level,
		Length: e.run.body.Len(),
		Run:    e.state.Runs + 1,
		Cause:  cause,
		Hold:   e.cfg.Timing.GameOverDuration(),
	}
	e.state.Runs++
	e.logger.Info("snake died",
		"cause", cause,
		"score", banner.Score,
		"level", banner.Level,
		"length", banner.Length,
		"run", banner.Run,
	)

	if err := e.resetRun(); err != nil {
		return e.last, err
	}
	e.setMessage(Message{
		Text:  fmt.Sprintf("Game restarted! Run #%d", e.state.Runs),
		Color: core.ColorYellow,
	})

	e.last = e.emitFrame()
	e.last.GameOver = banner
	return e.last, nil
}

// consume applies the food, replaces it and checks for a level-up.
func (e *Engine) consume(f *Food) error {
	msg, ok := f.Apply(&e.state, e.run.body)
	if !ok {
		return nil
	}
	e.setMessage(msg)
	e.logger.Debug("food eaten", "kind", f.Kind, "score", e.state.Score, "length", e.run.body.Len())

	e.run.food = nil
	if err := e.spawnFood(); err != nil {
		return err
	}

	if n, leveled := e.state.CheckLevelUp(); leveled {
		e.logger.Info("level up", "level", e.state.Level, "speed", e.state.Speed, "obstacles", n)
		e.setMessage(Message{
			Text:  fmt.Sprintf("LEVEL %d! More speed and obstacles", e.state.Level),
			Color: core.ColorCyan,
		})
		if err := e.obstacles.AddBatch(e.rng, n, e.grid, e.run.food.Pos); err != nil {
			e.logger.Error("obstacle placement failed", "level", e.state.Level, "error", err)
			return err
		}
	}
	return nil
}

// resetRun replaces the run scope: one head segment at the origin heading
// right, no effect, fresh food.
func (e *Engine) resetRun() error {
	e.state.ResetRun()
	e.run = runScope{
		body:      NewBody(e.grid.Origin()),
		direction: DirRight,
	}
	return e.spawnFood()
}

func (e *Engine) spawnFood() error {
	occupied := append(e.obstacles.Positions(), e.run.body.Segments()...)
	food, err := SpawnFood(e.rng, e.grid, occupied, e.cfg.Placement.FoodClearance, e.cfg.Placement.MaxAttempts)
	if err != nil {
		e.logger.Error("food placement failed", "occupied", len(occupied), "error", err)
		return err
	}
	e.run.food = food
	return nil
}

func (e *Engine) setMessage(m Message) {
	e.run.message = m
	e.run.messageTTL = e.cfg.Timing.MessageFrames
}

// emitFrame snapshots the engine and ages the transient message by one frame.
func (e *Engine) emitFrame() Frame {
	f := Frame{
		Tick:      e.tick,
		Snake:     e.run.body.Segments(),
		Obstacles: e.obstacles.Positions(),
		Score:     e.state.Score,
		Level:     e.state.Level,
		Runs:      e.state.Runs,
		Speed:     e.state.Speed,
		Direction: e.run.direction,
		Effect:    e.state.ActiveEffect(),
	}
	if e.state.Effect != nil {
		f.EffectRemaining = e.state.Effect.Remaining
	}
	if food := e.run.food; food != nil {
		f.Food = &FoodView{Kind: food.Kind, Pos: food.Pos}
	}
	if e.run.messageTTL > 0 {
		msg := e.run.message
		f.Message = &msg
		e.run.messageTTL--
	}
	return f
}
