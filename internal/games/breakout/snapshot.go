package breakout

import "strings"

// Snapshot is a flat copy of the game for determinism checks and dumps.
// Brick rows are strings with '#' for alive and '.' for destroyed bricks.
type Snapshot struct {
	Variant         string   `yaml:"variant"`
	Tick            uint64   `yaml:"tick"`
	BallX           int      `yaml:"ball_x"`
	BallY           int      `yaml:"ball_y"`
	BallDX          int      `yaml:"ball_dx"`
	BallDY          int      `yaml:"ball_dy"`
	PaddleX         int      `yaml:"paddle_x"`
	Score           int      `yaml:"score"`
	BricksRemaining int      `yaml:"bricks_remaining"`
	Bricks          []string `yaml:"bricks"`
}

// Snapshot returns the current game as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.state
	rows := make([]string, s.Bricks.Rows())
	for r := range rows {
		var sb strings.Builder
		for c := range s.Bricks.Cols() {
			if s.Bricks.Alive(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}

	return Snapshot{
		Variant:         string(g.cfg.Variant),
		Tick:            g.tick,
		BallX:           s.Ball.X,
		BallY:           s.Ball.Y,
		BallDX:          s.Ball.DX,
		BallDY:          s.Ball.DY,
		PaddleX:         s.Paddle.X,
		Score:           s.Score,
		BricksRemaining: s.Bricks.CountAlive(),
		Bricks:          rows,
	}
}

// Hash folds the snapshot into a single value for determinism tests.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{snap.BallX, snap.BallY, snap.BallDX, snap.BallDY, snap.PaddleX, snap.Score, snap.BricksRemaining} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, row := range snap.Bricks {
		for i := 0; i < len(row); i++ {
			h = h*31 + uint64(row[i])
		}
	}
	return h
}
