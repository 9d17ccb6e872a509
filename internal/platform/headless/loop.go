// Package headless drives a game from a ticker instead of a terminal.
// It is used by the sim command and by tests that need real timing.
package headless

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is what the loop drives.
type Game interface {
	core.TickHandler
	core.KeyHandler
}

// Run ticks g every period until ctx is done. Actions received on keys are
// applied as soon as they arrive, between ticks. onFrame, when set, sees the
// result of every tick. Run returns ctx.Err().
func Run(ctx context.Context, period time.Duration, g Game, keys <-chan core.Action, onFrame func(core.StepResult)) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			res := g.Tick()
			if onFrame != nil {
				onFrame(res)
			}

		case a, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			g.HandleKey(a)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Script is a list of actions keyed by the tick after which they are sent.
type Script map[uint64][]core.Action

// RunFor advances g by n ticks without sleeping, feeding it the scripted
// actions, and returns the last tick's result.
func RunFor(g Game, n uint64, script Script) core.StepResult {
	var res core.StepResult
	for i := uint64(0); i < n; i++ {
		for _, a := range script[i] {
			g.HandleKey(a)
		}
		res = g.Tick()
	}
	return res
}
