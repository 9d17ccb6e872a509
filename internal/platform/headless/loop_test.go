package headless

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type countingGame struct {
	mu    sync.Mutex
	ticks uint64
	keys  []core.Action
}

func (g *countingGame) Tick() core.StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ticks++
	return core.StepResult{Status: core.Status{Tick: g.ticks}, Redraw: true}
}

func (g *countingGame) HandleKey(a core.Action) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.keys = append(g.keys, a)
	return true
}

func (g *countingGame) snapshot() (uint64, []core.Action) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ticks, append([]core.Action(nil), g.keys...)
}

func TestRunTicksUntilCancelled(t *testing.T) {
	g := &countingGame{}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	frames := 0
	err := Run(ctx, time.Millisecond, g, nil, func(core.StepResult) { frames++ })

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, expected %v", err, context.DeadlineExceeded)
	}
	ticks, _ := g.snapshot()
	if ticks == 0 {
		t.Error("Run() should have ticked at least once")
	}
	if uint64(frames) != ticks {
		t.Errorf("onFrame called %d times for %d ticks", frames, ticks)
	}
}

func TestRunAppliesKeys(t *testing.T) {
	g := &countingGame{}
	keys := make(chan core.Action, 3)
	keys <- core.ActionLeft
	keys <- core.ActionRight
	close(keys)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := Run(ctx, time.Hour, g, keys, nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v", err)
	}

	ticks, got := g.snapshot()
	if ticks != 0 {
		t.Errorf("ticks = %d, expected 0 with an hour-long period", ticks)
	}
	if len(got) != 2 || got[0] != core.ActionLeft || got[1] != core.ActionRight {
		t.Errorf("keys = %v, expected [Left Right]", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, time.Hour, &countingGame{}, nil, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected %v", err, context.Canceled)
	}
}

func TestRunFor(t *testing.T) {
	g := &countingGame{}
	script := Script{
		0: {core.ActionLeft},
		4: {core.ActionRight, core.ActionRight},
	}

	res := RunFor(g, 10, script)

	if res.Status.Tick != 10 {
		t.Errorf("RunFor() tick = %d, expected 10", res.Status.Tick)
	}
	if _, keys := g.snapshot(); len(keys) != 3 {
		t.Errorf("RunFor() sent %d keys, expected 3", len(keys))
	}
}
