package snake

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	e, err := New(config.DefaultSnakeConfig(), seed)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return e
}

// placeFood puts a fresh food of kind at p.
func placeFood(e *Engine, kind FoodKind, p core.Point) {
	e.run.food = &Food{Kind: kind, Pos: p}
}

// parkFood moves the food out of the snake's way.
func parkFood(e *Engine) {
	placeFood(e, FoodFit, core.Point{X: -280, Y: -280})
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(t, 1)
	f := e.Frame()

	if f.Score != 0 || f.Level != 1 || f.Runs != 0 {
		t.Errorf("initial frame score=%d level=%d runs=%d", f.Score, f.Level, f.Runs)
	}
	if f.Speed != BaseSpeed {
		t.Errorf("Speed = %d, expected %d", f.Speed, BaseSpeed)
	}
	if len(f.Snake) != 1 || f.Head() != (core.Point{}) {
		t.Errorf("initial snake = %v, expected single segment at origin", f.Snake)
	}
	if f.Direction != DirRight {
		t.Errorf("Direction = %v, expected right", f.Direction)
	}
	if len(f.Obstacles) != 0 {
		t.Errorf("level 1 obstacles = %d, expected 0", len(f.Obstacles))
	}
	if f.Food == nil {
		t.Fatal("no food on the board")
	}
	if f.Food.Pos.WithinBox(core.Point{}, 20) {
		t.Errorf("food %v spawned on the snake", f.Food.Pos)
	}
}

func TestNewEngineInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.CellSize = 0
	if _, err := New(cfg, 1); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestTickMovesHead(t *testing.T) {
	e := newTestEngine(t, 1)
	parkFood(e)

	f, err := e.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if f.Head() != (core.Point{X: 20}) {
		t.Errorf("Head() = %v, expected (20,0)", f.Head())
	}
	if f.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", f.Tick)
	}
}

func TestEatFitLevelsUp(t *testing.T) {
	e := newTestEngine(t, 5)
	e.state.Score = 49
	placeFood(e, FoodFit, core.Point{X: 20})

	f, err := e.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if f.Score != 50 {
		t.Errorf("Score = %d, expected 50", f.Score)
	}
	if f.Level != 2 {
		t.Errorf("Level = %d, expected 2", f.Level)
	}
	if f.Speed != 170 {
		t.Errorf("Speed = %d, expected 170", f.Speed)
	}
	if len(f.Obstacles) != 2 {
		t.Errorf("obstacles = %d, expected 2", len(f.Obstacles))
	}
	if len(f.Snake) != 2 {
		t.Errorf("length = %d, expected 2", len(f.Snake))
	}
	if f.Message == nil || f.Message.Text != "LEVEL 2! More speed and obstacles" {
		t.Errorf("Message = %+v, expected level-up notice", f.Message)
	}
	if f.Food == nil || e.run.food.Consumed() {
		t.Error("food was not replaced")
	}
}

func TestHighFatEffectExpires(t *testing.T) {
	e := newTestEngine(t, 2)
	placeFood(e, FoodHighFat, core.Point{X: 20})

	f, err := e.Tick()
	if err != nil {
		t.Fatal(err)
	}
	parkFood(e)
	if f.Speed != 100 || f.Effect != EffectSlow {
		t.Fatalf("after eating speed=%d effect=%v, expected 100 Slow", f.Speed, f.Effect)
	}
	if f.EffectRemaining != FoodEffectTicks-1 {
		t.Errorf("EffectRemaining = %d, expected %d", f.EffectRemaining, FoodEffectTicks-1)
	}
	if f.HUD() != "Score: 3 | Level: 1 | Runs: 0 (SLOW)" {
		t.Errorf("HUD() = %q", f.HUD())
	}

	for range FoodEffectTicks - 1 {
		if f, err = e.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if f.Effect != EffectNone {
		t.Errorf("effect = %v, expected None", f.Effect)
	}
	if f.Speed != BaseSpeed {
		t.Errorf("Speed = %d, expected %d", f.Speed, BaseSpeed)
	}
}

func TestWallDeathResetsRun(t *testing.T) {
	e := newTestEngine(t, 3)
	e.state.Score = 12
	e.run.body = &Body{segments: []core.Point{{X: 300}, {X: 280}, {X: 260}}}
	e.run.direction = DirUp

	f, err := e.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if f.GameOver == nil {
		t.Fatal("expected a game over banner")
	}
	g := f.GameOver
	if g.Cause != CauseWall {
		t.Errorf("Cause = %v, expected %v", g.Cause, CauseWall)
	}
	if g.Score != 12 || g.Length != 3 || g.Run != 1 {
		t.Errorf("banner = %+v", g)
	}
	if g.Hold != 3*time.Second {
		t.Errorf("Hold = %v, expected 3s", g.Hold)
	}

	if f.Runs != 1 || f.Score != 12 || f.Level != 1 {
		t.Errorf("after death runs=%d score=%d level=%d", f.Runs, f.Score, f.Level)
	}
	if len(f.Snake) != 1 || f.Head() != (core.Point{}) {
		t.Errorf("snake after reset = %v", f.Snake)
	}
	if f.Direction != DirRight {
		t.Errorf("Direction = %v, expected right", f.Direction)
	}
	if f.Message == nil || f.Message.Text != "Game restarted! Run #1" {
		t.Errorf("Message = %+v", f.Message)
	}
}

func TestSelfCollision(t *testing.T) {
	e := newTestEngine(t, 4)
	e.run.body = &Body{segments: []core.Point{{}, {X: 20}, {X: 20, Y: 20}, {Y: 20}, {}}}

	f, err := e.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if f.GameOver == nil || f.GameOver.Cause != CauseSelf {
		t.Errorf("GameOver = %+v, expected self collision", f.GameOver)
	}
}

func TestObstacleCollisionKeepsObstacles(t *testing.T) {
	e := newTestEngine(t, 6)
	e.obstacles.positions = []core.Point{{X: 100, Y: 100}, {X: -200, Y: 60}}
	e.run.body = NewBody(core.Point{X: 100, Y: 100})

	f, err := e.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if f.GameOver == nil || f.GameOver.Cause != CauseObstacle {
		t.Fatalf("GameOver = %+v, expected obstacle collision", f.GameOver)
	}
	if !reflect.DeepEqual(f.Obstacles, []core.Point{{X: 100, Y: 100}, {X: -200, Y: 60}}) {
		t.Errorf("obstacles after death = %v", f.Obstacles)
	}
}

func TestReversalIgnored(t *testing.T) {
	e := newTestEngine(t, 7)

	left, err := ParseDirection("izquierda")
	if err != nil {
		t.Fatal(err)
	}
	if err := e.OnDirectionInput(left); err != nil {
		t.Fatalf("OnDirectionInput error: %v", err)
	}
	if e.Direction() != DirRight {
		t.Errorf("Direction = %v, expected right after reverse input", e.Direction())
	}

	if err := e.OnDirectionInput(DirUp); err != nil {
		t.Fatal(err)
	}
	if e.Direction() != DirUp {
		t.Errorf("Direction = %v, expected up", e.Direction())
	}
}

func TestLastInputWins(t *testing.T) {
	e := newTestEngine(t, 8)
	parkFood(e)

	// Up is accepted, then down is the reverse of up and ignored.
	_ = e.OnDirectionInput(DirUp)
	_ = e.OnDirectionInput(DirDown)

	f, err := e.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if f.Head() != (core.Point{Y: 20}) {
		t.Errorf("Head() = %v, expected (0,20)", f.Head())
	}

	// Two inputs in one tick can turn a full half circle.
	_ = e.OnDirectionInput(DirRight)
	_ = e.OnDirectionInput(DirDown)
	if f, err = e.Tick(); err != nil {
		t.Fatal(err)
	}
	if f.Head() != (core.Point{}) {
		t.Errorf("Head() = %v, expected (0,0)", f.Head())
	}
}

func TestInvalidDirectionInput(t *testing.T) {
	e := newTestEngine(t, 9)
	err := e.OnDirectionInput(Direction(42))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("error = %v, expected ErrInvalidDirection", err)
	}
	if e.Direction() != DirRight {
		t.Errorf("Direction = %v, expected unchanged right", e.Direction())
	}
}

func TestDeterminism(t *testing.T) {
	inputs := map[int]Direction{
		5:  DirUp,
		12: DirLeft,
		20: DirDown,
		31: DirRight,
		45: DirUp,
	}

	run := func() []Frame {
		e := newTestEngine(t, 12345)
		frames := make([]Frame, 0, 200)
		for i := range 200 {
			if d, ok := inputs[i]; ok {
				_ = e.OnDirectionInput(d)
			}
			f, err := e.Tick()
			if err != nil {
				t.Fatal(err)
			}
			frames = append(frames, f)
		}
		return frames
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and inputs produced different frames")
	}
}

func TestTickInterval(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Timing.TimeUnit = 150 * time.Millisecond
	e, err := New(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}

	if got := e.TickInterval(); got != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 100ms", got)
	}

	e.state.Speed = 300
	if got := e.TickInterval(); got != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v at speed 300, expected 50ms", got)
	}
}

func TestMessageExpires(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Timing.MessageFrames = 2
	e, err := New(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	placeFood(e, FoodFit, core.Point{X: 20})

	expect := []bool{true, true, false}
	for i, want := range expect {
		f, err := e.Tick()
		if err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			parkFood(e)
		}
		if got := f.Message != nil; got != want {
			t.Errorf("tick %d: message present = %v, expected %v", i, got, want)
		}
	}
}

func TestStateIsCopy(t *testing.T) {
	e := newTestEngine(t, 1)
	e.state.SetEffect(EffectFast, 3)

	st := e.State()
	st.Effect.Remaining = 99
	st.Score = 1000

	if e.state.Effect.Remaining != 3 || e.state.Score != 0 {
		t.Error("mutating State() result changed the engine")
	}
}

func TestObstaclesAccumulateAcrossLevels(t *testing.T) {
	e := newTestEngine(t, 11)

	expected := 0
	for level := 2; level <= 4; level++ {
		// The center square never holds obstacles, so a fresh head at the
		// origin can always take one step right.
		e.run.body = NewBody(core.Point{})
		e.run.direction = DirRight
		e.state.Score = (level-1)*PointsPerLevel - 1
		placeFood(e, FoodFit, core.Point{X: 20})

		f, err := e.Tick()
		if err != nil {
			t.Fatal(err)
		}
		expected += 2 * (level - 1)
		if f.Level != level {
			t.Fatalf("Level = %d, expected %d", f.Level, level)
		}
		if len(f.Obstacles) != expected {
			t.Errorf("level %d: obstacles = %d, expected %d", level, len(f.Obstacles), expected)
		}
		if f.Speed != BaseSpeedFor(level) {
			t.Errorf("level %d: Speed = %d, expected %d", level, f.Speed, BaseSpeedFor(level))
		}
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	for seed := range int64(20) {
		e := newTestEngine(t, seed)
		inputs := rand.New(rand.NewSource(seed + 1000))

		prevLevel := 1
		for i := range 3000 {
			if inputs.Intn(4) == 0 {
				_ = e.OnDirectionInput(Direction(inputs.Intn(4)))
			}
			f, err := e.Tick()
			if err != nil {
				t.Fatalf("seed %d tick %d: %v", seed, i, err)
			}

			if f.Score < 0 {
				t.Fatalf("seed %d tick %d: negative score %d", seed, i, f.Score)
			}
			if len(f.Snake) < 1 {
				t.Fatalf("seed %d tick %d: empty snake", seed, i)
			}
			if f.Speed < MinSpeed || f.Speed > MaxSpeed {
				t.Fatalf("seed %d tick %d: speed %d out of range", seed, i, f.Speed)
			}
			if f.Effect == EffectNone && f.Speed != BaseSpeedFor(f.Level) {
				t.Fatalf("seed %d tick %d: speed %d without effect, expected %d",
					seed, i, f.Speed, BaseSpeedFor(f.Level))
			}
			if f.Level < prevLevel {
				t.Fatalf("seed %d tick %d: level fell from %d to %d", seed, i, prevLevel, f.Level)
			}
			prevLevel = f.Level

			for _, p := range append(f.Snake, f.Obstacles...) {
				if !e.grid.Aligned(p) {
					t.Fatalf("seed %d tick %d: %v not cell aligned", seed, i, p)
				}
			}
			if f.Food != nil {
				for _, o := range f.Obstacles {
					if f.Food.Pos.WithinBox(o, 20) {
						t.Fatalf("seed %d tick %d: food %v on obstacle %v", seed, i, f.Food.Pos, o)
					}
				}
			}
		}
	}
}
