package snake

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout of the text rendering. Each board cell takes two screen columns so
// the board looks square in a terminal.
const (
	hudRow     = 0
	messageRow = 1
	boardTop   = 2
	cellWidth  = 2
)

// BoardSize returns the screen size needed to draw a frame for grid.
func BoardSize(grid Grid) (w, h int) {
	return grid.Columns()*cellWidth + 2, boardTop + grid.Rows() + 2
}

// Render draws the frame onto dst.
func (f Frame) Render(dst *core.Screen, grid Grid) {
	dst.Clear()

	needW, needH := BoardSize(grid)
	if dst.Width() < needW || dst.Height() < needH {
		drawTooSmall(dst, needW, needH)
		return
	}

	offX := (dst.Width() - needW) / 2

	dst.DrawText(offX, hudRow, f.HUD(), core.ColorWhite)
	if f.Message != nil {
		dst.DrawText(offX, messageRow, f.Message.Text, f.Message.Color)
	}

	dst.DrawBox(core.NewRect(offX, boardTop, needW, grid.Rows()+2), core.ColorGray)

	plot := func(p core.Point, r rune, c core.Color) {
		col, row := grid.CellIndex(p)
		if col < 0 || col >= grid.Columns() || row < 0 || row >= grid.Rows() {
			return
		}
		dst.SetColor(offX+1+col*cellWidth, boardTop+1+row, r, c)
	}

	for _, o := range f.Obstacles {
		plot(o, '#', core.ColorRed)
	}
	if f.Food != nil {
		plot(f.Food.Pos, f.Food.Kind.Glyph(), f.Food.Kind.Color())
	}
	for i := len(f.Snake) - 1; i > 0; i-- {
		plot(f.Snake[i], 'o', core.ColorGreen)
	}
	if len(f.Snake) > 0 {
		plot(f.Snake[0], 'O', core.ColorBrightGreen)
	}

	if g := f.GameOver; g != nil {
		secs := int(math.Ceil(g.Hold.Seconds()))
		DrawOverlay(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d | Level: %d", g.Score, g.Level),
			fmt.Sprintf("Restarting in %d seconds...", secs),
		)
	}
}

// DrawOverlay draws a boxed block of centered lines in the middle of dst.
func DrawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}

func drawTooSmall(dst *core.Screen, needW, needH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorGray)
}
