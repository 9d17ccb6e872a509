package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func renderClassic(g *Game) *core.Screen {
	s := core.NewScreen(42, 32)
	g.Render(s)
	return s
}

func TestRenderFrame(t *testing.T) {
	s := renderClassic(newClassic())

	corners := []struct {
		x, y int
		r    rune
	}{
		{0, 0, '┌'},
		{41, 0, '┐'},
		{0, 31, '└'},
		{41, 31, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("Get(%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}

	if row := s.Row(0); !strings.Contains(row, " Score: 0 ") {
		t.Errorf("top border %q should contain the score", row)
	}
	if got := s.Get(2, 0); got != ' ' || s.Get(3, 0) != 'S' {
		t.Errorf("score should start at column 2, got %q", s.Row(0))
	}
}

func TestRenderBricks(t *testing.T) {
	s := renderClassic(newClassic())

	tests := []struct {
		x, y  int
		color core.Color
	}{
		{1, 4, core.ColorRed},
		{3, 4, core.ColorRed},
		{1, 5, core.ColorOrange},
		{1, 6, core.ColorYellow},
		{1, 9, core.ColorCyan},
	}
	for _, tc := range tests {
		c := s.GetCell(tc.x, tc.y)
		if c.Rune != BrickGlyph || c.Color != tc.color {
			t.Errorf("cell (%d, %d) = %+v, expected brick in %v", tc.x, tc.y, c, tc.color)
		}
	}
	if got := s.Get(4, 4); got != ' ' {
		t.Errorf("gap between bricks = %q, expected blank", got)
	}
}

func TestRenderSkipsDeadBricks(t *testing.T) {
	g := newClassic()
	g.state.Bricks.Kill(0, 0)

	s := renderClassic(g)
	if got := s.Get(1, 4); got != ' ' {
		t.Errorf("dead brick cell = %q, expected blank", got)
	}
}

func TestRenderPaddleAndBall(t *testing.T) {
	s := renderClassic(newClassic())

	for x := 18; x <= 23; x++ {
		c := s.GetCell(x, 29)
		if c.Rune != PaddleGlyph || c.Color != core.ColorMagenta {
			t.Errorf("paddle cell (%d, 29) = %+v", x, c)
		}
	}
	if got := s.Get(24, 29); got != ' ' {
		t.Errorf("cell right of paddle = %q, expected blank", got)
	}

	ball := s.GetCell(22, 16)
	if ball.Rune != BallGlyph || ball.Color != core.ColorBlue {
		t.Errorf("ball cell = %+v", ball)
	}
}

func TestRenderClipsPaddleToArena(t *testing.T) {
	g := newClassic()
	g.state.Paddle.X = -30

	s := renderClassic(g)
	if got := s.Get(0, 29); got != '│' {
		t.Errorf("border cell = %q, expected it untouched", got)
	}
	if got := s.Get(1, 29); got != PaddleGlyph {
		t.Errorf("visible paddle cell = %q, expected %q", got, PaddleGlyph)
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := core.NewScreen(18, 8)
	newClassic().Render(s)

	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("small screen should show a warning, got:\n%s", s.String())
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newClassic()
	before := g.Snapshot()
	renderClassic(g)

	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Render() should not change the game")
	}
}

func TestRowColor(t *testing.T) {
	tests := []struct {
		row, rows int
		expected  core.Color
	}{
		{0, 10, core.ColorRed},
		{1, 10, core.ColorRed},
		{2, 10, core.ColorOrange},
		{5, 10, core.ColorYellow},
		{7, 10, core.ColorGreen},
		{9, 10, core.ColorCyan},
		{0, 1, core.ColorRed},
		{2, 3, core.ColorGreen},
		{0, 0, core.ColorRed},
	}

	for _, tc := range tests {
		if got := RowColor(tc.row, tc.rows); got != tc.expected {
			t.Errorf("RowColor(%d, %d) = %v, expected %v", tc.row, tc.rows, got, tc.expected)
		}
	}
}

func TestRenderDemoTag(t *testing.T) {
	s := renderClassic(New(config.DefaultConfig(config.VariantDemo)))
	if row := s.Row(0); !strings.Contains(row, " demo ") {
		t.Errorf("top border %q should name the variant", row)
	}
}
