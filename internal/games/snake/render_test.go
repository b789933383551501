package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestBoardSize(t *testing.T) {
	w, h := BoardSize(testGrid())
	if w != 60 || h != 33 {
		t.Errorf("BoardSize() = %dx%d, expected 60x33", w, h)
	}
}

func TestRenderFrame(t *testing.T) {
	e := newTestEngine(t, 1)
	placeFood(e, FoodRoyal, core.Point{X: -280, Y: 280})
	e.obstacles.positions = []core.Point{{X: 280, Y: -280}}
	e.last = e.emitFrame()

	scr := core.NewScreen(60, 33)
	e.Render(scr)

	if got := scr.Row(0); !strings.HasPrefix(got, "Score: 0 | Level: 1 | Runs: 0") {
		t.Errorf("HUD row = %q", got)
	}
	if c := scr.GetCell(29, 17); c.Rune != 'O' {
		t.Errorf("head cell = %q, expected 'O'", c.Rune)
	}
	if c := scr.GetCell(1, 3); c.Rune != '$' || c.Color != FoodRoyal.Color() {
		t.Errorf("food cell = %q/%v, expected '$'", c.Rune, c.Color)
	}
	if c := scr.GetCell(57, 31); c.Rune != '#' {
		t.Errorf("obstacle cell = %q, expected '#'", c.Rune)
	}
	if c := scr.GetCell(0, 2); c.Rune != '┌' {
		t.Errorf("board corner = %q, expected '┌'", c.Rune)
	}
}

func TestRenderTooSmall(t *testing.T) {
	e := newTestEngine(t, 1)
	scr := core.NewScreen(40, 20)
	e.Render(scr)

	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected a too-small notice")
	}
}

func TestRenderGameOver(t *testing.T) {
	f := Frame{
		Snake: []core.Point{{}},
		Level: 2,
		GameOver: &GameOver{
			Score: 42,
			Level: 2,
			Hold:  3 * time.Second,
		},
	}
	scr := core.NewScreen(60, 33)
	f.Render(scr, testGrid())

	out := scr.String()
	for _, want := range []string{"GAME OVER", "Score: 42 | Level: 2", "Restarting in 3 seconds..."} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}
