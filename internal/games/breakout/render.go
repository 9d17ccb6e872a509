package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	BrickGlyph  = '█'
	PaddleGlyph = '='
	BallGlyph   = '●'
)

// Minimum screen size the renderer needs.
const (
	MinScreenW = 20
	MinScreenH = 10
)

// bandColors are the five row bands from the top of the grid down.
var bandColors = [...]core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
}

// RowColor returns the color of a brick row. The rows are split into five
// equal bands, so a 10-row grid gets two rows per color.
func RowColor(row, rows int) core.Color {
	if rows <= 0 {
		return bandColors[0]
	}
	band := core.Clamp(row*len(bandColors)/rows, 0, len(bandColors)-1)
	return bandColors[band]
}

// viewport maps arena pixels onto the cells inside the screen border.
type viewport struct {
	inner  core.Rect
	arenaW int
	arenaH int
}

func (v viewport) cellX(px int) int {
	return v.inner.X + floorDiv(px*v.inner.W, v.arenaW)
}

func (v viewport) cellY(py int) int {
	return v.inner.Y + floorDiv(py*v.inner.H, v.arenaH)
}

// hspan converts a pixel span to a cell range [x0, x1), at least one cell wide.
func (v viewport) hspan(px, width int) (int, int) {
	x0 := v.cellX(px)
	x1 := v.cellX(px + width)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	return x0, x1
}

func (v viewport) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if v.inner.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// Render draws the arena border, the alive bricks, the paddle, the ball and
// the score. It only reads the game.
func (g *Game) Render(dst *core.Screen) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	frame := core.NewRect(0, 0, dst.Width(), dst.Height())
	dst.DrawBox(frame, core.ColorGray)

	v := viewport{
		inner:  core.NewRect(1, 1, dst.Width()-2, dst.Height()-2),
		arenaW: g.layout.ArenaW,
		arenaH: g.layout.ArenaH,
	}

	g.renderBricks(dst, v)
	g.renderPaddle(dst, v)
	g.renderBall(dst, v)

	score := fmt.Sprintf(" Score: %d ", g.state.Score)
	dst.DrawTextColored(2, 0, score, core.ColorWhite)
	if g.cfg.Variant != "" {
		tag := fmt.Sprintf(" %s ", g.cfg.Variant)
		dst.DrawTextColored(dst.Width()-len(tag)-2, 0, tag, core.ColorGray)
	}
}

func (g *Game) renderBricks(dst *core.Screen, v viewport) {
	rows := g.state.Bricks.Rows()
	for row := range rows {
		color := RowColor(row, rows)
		for col := range g.state.Bricks.Cols() {
			if !g.state.Bricks.Alive(row, col) {
				continue
			}
			r := g.layout.BrickRect(row, col)
			x0, x1 := v.hspan(r.X, r.W)
			y := v.cellY(r.Y)
			for x := x0; x < x1; x++ {
				v.set(dst, x, y, BrickGlyph, color)
			}
		}
	}
}

func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	r := g.layout.PaddleRect(g.state.Paddle)
	x0, x1 := v.hspan(r.X, r.W)
	y := v.cellY(r.Y)
	for x := x0; x < x1; x++ {
		v.set(dst, x, y, PaddleGlyph, core.ColorMagenta)
	}
}

func (g *Game) renderBall(dst *core.Screen, v viewport) {
	cx, cy := g.layout.BallRect(g.state.Ball).Center()
	v.set(dst, v.cellX(cx), v.cellY(cy), BallGlyph, core.ColorBlue)
}

// floorDiv divides rounding toward negative infinity, so positions left of
// the arena map to cells left of the border.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
