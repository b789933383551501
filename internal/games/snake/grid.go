package snake

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Grid is the logical board: pixel coordinates quantized to CellSize,
// centered on the origin with the y axis pointing up.
type Grid struct {
	cellSize   int
	bounds     core.Rect
	spawnCells int // Spawn area spans [-spawnCells, spawnCells] cells on each axis
}

// NewGrid builds the board geometry from configuration.
func NewGrid(cfg config.SnakeGrid) Grid {
	return Grid{
		cellSize:   cfg.CellSize,
		bounds:     core.NewRect(-cfg.HalfWidth, -cfg.HalfHeight, 2*cfg.HalfWidth+1, 2*cfg.HalfHeight+1),
		spawnCells: int(math.Round(float64(cfg.SpawnHalf) / float64(cfg.CellSize))),
	}
}

// CellSize returns the quantization unit.
func (g Grid) CellSize() int {
	return g.cellSize
}

// Bounds returns the playable rectangle (edges inclusive).
func (g Grid) Bounds() core.Rect {
	return g.bounds
}

// Origin returns the board center, where every run starts.
func (g Grid) Origin() core.Point {
	return g.bounds.Center()
}

// Contains reports whether p lies inside the playable rectangle.
func (g Grid) Contains(p core.Point) bool {
	return g.bounds.ContainsPoint(p)
}

// Snap rounds v to the nearest multiple of the cell size.
func (g Grid) Snap(v int) int {
	return int(math.Round(float64(v)/float64(g.cellSize))) * g.cellSize
}

// Aligned reports whether p sits exactly on a cell.
func (g Grid) Aligned(p core.Point) bool {
	return p.X%g.cellSize == 0 && p.Y%g.cellSize == 0
}

// RandomCell draws a cell uniformly from the spawn area.
func (g Grid) RandomCell(rng *rand.Rand) core.Point {
	n := 2*g.spawnCells + 1
	return core.Point{
		X: (rng.Intn(n) - g.spawnCells) * g.cellSize,
		Y: (rng.Intn(n) - g.spawnCells) * g.cellSize,
	}
}

// Columns returns the number of whole cells across the board.
func (g Grid) Columns() int {
	return 2*(g.bounds.W/2/g.cellSize) + 1
}

// Rows returns the number of whole cells down the board.
func (g Grid) Rows() int {
	return 2*(g.bounds.H/2/g.cellSize) + 1
}

// CellIndex maps a position to (column, row) with row 0 at the top.
// Positions outside the board map outside [0, Columns) x [0, Rows).
func (g Grid) CellIndex(p core.Point) (col, row int) {
	halfCols := g.Columns() / 2
	halfRows := g.Rows() / 2
	col = floorDiv(p.X, g.cellSize) + halfCols
	row = halfRows - floorDiv(p.Y, g.cellSize)
	return col, row
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
