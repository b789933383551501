package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func testGrid() Grid {
	return NewGrid(config.DefaultSnakeConfig().Grid)
}

func TestGridContains(t *testing.T) {
	g := testGrid()
	tests := []struct {
		p        core.Point
		expected bool
	}{
		{core.Point{}, true},
		{core.Point{X: 280, Y: -280}, true},
		{core.Point{X: 290, Y: 290}, true},
		{core.Point{X: 300}, false},
		{core.Point{Y: -300}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.p); got != tt.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tt.p, got, tt.expected)
		}
	}
}

func TestGridOrigin(t *testing.T) {
	if o := testGrid().Origin(); o != (core.Point{}) {
		t.Errorf("Origin() = %v, expected (0,0)", o)
	}
}

func TestRandomCellInSpawnArea(t *testing.T) {
	g := testGrid()
	rng := rand.New(rand.NewSource(1))
	for range 5000 {
		p := g.RandomCell(rng)
		if !g.Aligned(p) {
			t.Fatalf("RandomCell() = %v is not cell aligned", p)
		}
		if core.Abs(p.X) > 280 || core.Abs(p.Y) > 280 {
			t.Fatalf("RandomCell() = %v outside spawn area", p)
		}
	}
}

func TestCellIndex(t *testing.T) {
	g := testGrid()
	if g.Columns() != 29 || g.Rows() != 29 {
		t.Fatalf("grid = %dx%d, expected 29x29", g.Columns(), g.Rows())
	}

	tests := []struct {
		p        core.Point
		col, row int
	}{
		{core.Point{}, 14, 14},
		{core.Point{X: -280, Y: 280}, 0, 0},
		{core.Point{X: 280, Y: -280}, 28, 28},
		{core.Point{X: 20, Y: 20}, 15, 13},
	}
	for _, tt := range tests {
		col, row := g.CellIndex(tt.p)
		if col != tt.col || row != tt.row {
			t.Errorf("CellIndex(%v) = (%d,%d), expected (%d,%d)", tt.p, col, row, tt.col, tt.row)
		}
	}
}

func TestSnap(t *testing.T) {
	g := testGrid()
	tests := []struct{ in, expected int }{
		{0, 0}, {9, 0}, {11, 20}, {-11, -20}, {280, 280},
	}
	for _, tt := range tests {
		if got := g.Snap(tt.in); got != tt.expected {
			t.Errorf("Snap(%d) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}
