// Package breakout implements the single-screen brick breaker: the game
// state, the per-tick simulation step, the paddle input controller and a
// read-only renderer for the terminal screen.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Ball is the ball's bounding-box top-left corner and its velocity per tick.
type Ball struct {
	X, Y   int
	DX, DY int
}

// Paddle holds the only mutable paddle coordinate. Width, height and y are
// fixed by configuration.
type Paddle struct {
	X int
}

// BrickGrid is a rows x cols matrix of alive flags, indexed [row][col].
type BrickGrid [][]bool

// NewBrickGrid creates a grid with every brick alive.
func NewBrickGrid(rows, cols int) BrickGrid {
	g := make(BrickGrid, rows)
	for r := range g {
		g[r] = make([]bool, cols)
		for c := range g[r] {
			g[r][c] = true
		}
	}
	return g
}

// Rows returns the number of brick rows.
func (g BrickGrid) Rows() int {
	return len(g)
}

// Cols returns the number of bricks per row.
func (g BrickGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Alive reports whether the brick at (row, col) is still standing.
// Out-of-range cells are reported dead.
func (g BrickGrid) Alive(row, col int) bool {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return false
	}
	return g[row][col]
}

// Kill marks a brick dead and reports whether it was alive before.
// There is no way back: a dead brick stays dead.
func (g BrickGrid) Kill(row, col int) bool {
	if !g.Alive(row, col) {
		return false
	}
	g[row][col] = false
	return true
}

// CountAlive returns the number of standing bricks.
func (g BrickGrid) CountAlive() int {
	n := 0
	for _, row := range g {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// CountDead returns the number of destroyed bricks.
func (g BrickGrid) CountDead() int {
	return g.Rows()*g.Cols() - g.CountAlive()
}

// Clone returns an independent copy of the grid.
func (g BrickGrid) Clone() BrickGrid {
	c := make(BrickGrid, len(g))
	for r, row := range g {
		c[r] = make([]bool, len(row))
		copy(c[r], row)
	}
	return c
}

// GameState is all mutable simulation data.
//
// Ownership: Advance writes Ball, Bricks and Score; InputController writes
// Paddle.X only. Callers running them on different goroutines must serialize
// them (Game does this with a mutex).
type GameState struct {
	Ball   Ball
	Paddle Paddle
	Bricks BrickGrid
	Score  int
}

// NewGameState creates the start-of-game state: every brick alive, the ball's
// top-left at the arena center moving at the configured velocity, the paddle
// centered and the score zero.
func NewGameState(cfg config.BreakoutConfig) *GameState {
	return &GameState{
		Ball: Ball{
			X:  cfg.Arena.Width / 2,
			Y:  cfg.Arena.Height / 2,
			DX: cfg.Ball.DX,
			DY: cfg.Ball.DY,
		},
		Paddle: Paddle{
			X: cfg.Arena.Width/2 - cfg.Paddle.Width/2,
		},
		Bricks: NewBrickGrid(cfg.Bricks.Rows, cfg.Bricks.PerRow),
		Score:  0,
	}
}
